package yclients

import "go.uber.org/fx"

var Module = fx.Provide(NewManager, NewClient)

// Client bundles every resource service over one shared Manager.
type Client struct {
	Clients        *ClientsService
	OnlineBookings *OnlineBookingsService
	Records        *RecordsService
	Visits         *VisitsService
	Services       *ServicesService
	StaffSchedule  *StaffScheduleService
	Journal        *JournalService
	Newsletter     *NewsletterService
	Comments       *CommentsService
	Validation     *ValidationService
	UserRecords    *UserRecordsService
}

func NewClient(m *Manager) *Client {
	return &Client{
		Clients:        NewClientsService(m),
		OnlineBookings: NewOnlineBookingsService(m),
		Records:        NewRecordsService(m),
		Visits:         NewVisitsService(m),
		Services:       NewServicesService(m),
		StaffSchedule:  NewStaffScheduleService(m),
		Journal:        NewJournalService(m),
		Newsletter:     NewNewsletterService(m),
		Comments:       NewCommentsService(m),
		Validation:     NewValidationService(m),
		UserRecords:    NewUserRecordsService(m),
	}
}
