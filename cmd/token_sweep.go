package cmd

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/repository"
)

// TokenSweepJob removes tokens past expiry. Redemption re-checks expiry in
// its own conditional statement, so this sweep is housekeeping, not a
// correctness mechanism.
type TokenSweepJob struct {
	tokens repository.TokenRepository
	logger *logrus.Entry
}

func NewTokenSweepJob(tokens repository.TokenRepository) *TokenSweepJob {
	return &TokenSweepJob{
		tokens: tokens,
		logger: logrus.WithField("component", "token_sweep"),
	}
}

func (j *TokenSweepJob) Run(ctx context.Context) error {
	removed, err := j.tokens.SweepExpired(ctx)
	if err != nil {
		j.logger.WithError(err).Error("error sweeping expired tokens")
		return err
	}
	j.logger.Infof("removed %d expired tokens", removed)
	return nil
}
