package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"salonbot/internal/structs"
	"salonbot/internal/yclients"
	"salonbot/pkg/config"
	"salonbot/pkg/logger"
	"salonbot/pkg/redis"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)

	ErrEmptyBooking = errors.New("booking created no records")
)

const (
	servicesCacheKey = "booking.services"
	servicesCacheTTL = 5 * time.Minute
)

type (
	Params struct {
		fx.In
		Logger   logger.Logger
		Config   config.IConfig
		Redis    redis.Client
		YClients *yclients.Client
	}

	// Service drives the booking funnel: what can be booked, when, and the
	// booking itself on behalf of a registered user.
	Service interface {
		BookableServices(ctx context.Context) ([]yclients.BookableService, error)
		BookableDates(ctx context.Context, serviceIDs []int64) ([]string, error)
		BookableTimes(ctx context.Context, staffID int64, date string, serviceIDs []int64) ([]yclients.Seance, error)
		Book(ctx context.Context, user structs.User, serviceID int64, datetime string) (yclients.BookRecordData, error)
		PriceList(ctx context.Context) ([]yclients.ServiceModel, error)
		DefaultStaffID() int64
	}

	service struct {
		logger    logger.Logger
		redis     redis.Client
		yclients  *yclients.Client
		companyID int64
		staffID   int64
	}
)

func New(p Params) Service {
	return &service{
		logger:    p.Logger,
		redis:     p.Redis,
		yclients:  p.YClients,
		companyID: p.Config.GetInt64("yclients.company_id"),
		staffID:   p.Config.GetInt64("booking.staff_id"),
	}
}

func (s *service) DefaultStaffID() int64 { return s.staffID }

// BookableServices reads through a short-lived redis cache: the catalogue
// changes rarely and the booking flow hits it on every step back.
func (s *service) BookableServices(ctx context.Context) ([]yclients.BookableService, error) {
	if cached, err := s.redis.Find(ctx, servicesCacheKey); err == nil {
		var services []yclients.BookableService
		if err := json.Unmarshal([]byte(cached), &services); err == nil {
			return services, nil
		}
	}

	resp, err := s.yclients.OnlineBookings.BookableServices(ctx, s.companyID, yclients.BookableServicesQuery{})
	if err != nil {
		s.logger.Error(ctx, "->OnlineBookings.BookableServices", zap.Error(err))
		return nil, err
	}

	if b, err := json.Marshal(resp.Data.Services); err == nil {
		if err := s.redis.Save(ctx, servicesCacheKey, b, servicesCacheTTL); err != nil {
			s.logger.Warn(ctx, "failed to cache bookable services", zap.Error(err))
		}
	}

	return resp.Data.Services, nil
}

func (s *service) BookableDates(ctx context.Context, serviceIDs []int64) ([]string, error) {
	resp, err := s.yclients.OnlineBookings.BookableDates(ctx, s.companyID, yclients.BookableDatesQuery{
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		s.logger.Error(ctx, "->OnlineBookings.BookableDates", zap.Error(err))
		return nil, err
	}
	return resp.Data.BookingDates, nil
}

func (s *service) BookableTimes(ctx context.Context, staffID int64, date string, serviceIDs []int64) ([]yclients.Seance, error) {
	if staffID == 0 {
		staffID = s.staffID
	}
	resp, err := s.yclients.OnlineBookings.BookableTimes(ctx, s.companyID, staffID, date, yclients.BookableTimesQuery{
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		s.logger.Error(ctx, "->OnlineBookings.BookableTimes", zap.Error(err))
		return nil, err
	}
	return resp.Data, nil
}

func (s *service) Book(ctx context.Context, user structs.User, serviceID int64, datetime string) (yclients.BookRecordData, error) {
	resp, err := s.yclients.OnlineBookings.BookRecord(ctx, s.companyID, yclients.BookRecordBody{
		Phone:    user.Phone,
		Fullname: user.Fullname(),
		Email:    "",
		Appointments: []yclients.Appointment{{
			ID:       1,
			Services: []int64{serviceID},
			StaffID:  s.staffID,
			Datetime: datetime,
		}},
	})
	if err != nil {
		s.logger.Error(ctx, "->OnlineBookings.BookRecord", zap.Error(err))
		return yclients.BookRecordData{}, err
	}
	if len(resp.Data) == 0 {
		return yclients.BookRecordData{}, ErrEmptyBooking
	}
	return resp.Data[0], nil
}

func (s *service) PriceList(ctx context.Context) ([]yclients.ServiceModel, error) {
	resp, err := s.yclients.Services.List(ctx, s.companyID, yclients.ServicesQuery{})
	if err != nil {
		s.logger.Error(ctx, "->Services.List", zap.Error(err))
		return nil, err
	}
	return resp.Data, nil
}
