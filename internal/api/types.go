package api

type CreateCheckoutRequest struct {
	AmountCents int64             `json:"amountCents"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
	SuccessURL  string            `json:"successUrl"`
	CancelURL   string            `json:"cancelUrl"`
}

type CreateCheckoutResponse struct {
	Id  string `json:"id"`
	URL string `json:"url"`
}

type BookingData struct {
	PatientName     string `json:"patientName"`
	PatientEmail    string `json:"patientEmail"`
	PatientPhone    string `json:"patientPhone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Consent         bool   `json:"consent"`
}

type CreateBookingRequest struct {
	DentistId   int         `json:"dentist_id"`
	DentistSlug string      `json:"dentist_slug"`
	Data        BookingData `json:"data"`
}

type CreateBookingResponse struct {
	URL           string `json:"url"`
	AppointmentId int    `json:"appointmentId"`
}

type OnboardingRequest struct {
	Token     string `json:"token"`
	DentistId int    `json:"dentistId"`

	ContactName        string            `json:"contactName"`
	PracticeName       string            `json:"practiceName"`
	Phone              string            `json:"phone"`
	Services           []string          `json:"services"`
	WeeklyAvailability map[string]string `json:"weeklyAvailability"`
	WeeklyCapacity     int               `json:"weeklyCapacity"`
}

type OnboardingStartResponse struct {
	AccountId int    `json:"accountId"`
	Token     string `json:"token"`
}

type RescheduleData struct {
	NewDateTime string `json:"newDateTime"`
	Reason      string `json:"reason"`
}

type RescheduleRequest struct {
	Token string         `json:"token"`
	Data  RescheduleData `json:"data"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type ReminderSweepResponse struct {
	Ok            bool `json:"ok"`
	RemindersSent int  `json:"remindersSent"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
