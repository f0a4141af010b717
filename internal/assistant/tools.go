package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Tool names the model is allowed to call. The set is closed: anything else
// is answered with a typed "not implemented" output so the run can finish.
const (
	toolGetBookableServices = "get_bookable_services"
	toolGetBookableDates    = "get_bookable_dates"
	toolGetBookableTimes    = "get_bookable_times"
	toolCreateBookRecord    = "create_book_record"
)

var ErrUnknownTool = errors.New("unknown tool")

type (
	bookableDatesArgs struct {
		ServiceIDs []int64 `json:"service_ids"`
	}

	bookableTimesArgs struct {
		StaffID    int64   `json:"staff_id"`
		Date       string  `json:"date"`
		ServiceIDs []int64 `json:"service_ids"`
	}

	bookRecordArgs struct {
		Appointments []struct {
			ID       int64  `json:"id"`
			Datetime string `json:"datetime"`
		} `json:"appointments"`
	}
)

// dispatchTool routes one function call to the booking service and returns
// the JSON the model will see as the tool output.
func (m *Manager) dispatchTool(ctx context.Context, name, arguments string) (string, error) {
	switch name {
	case toolGetBookableServices:
		services, err := m.booking.BookableServices(ctx)
		if err != nil {
			return "", err
		}
		return toolJSON(services)

	case toolGetBookableDates:
		var args bookableDatesArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("parse %s arguments: %w", name, err)
		}
		dates, err := m.booking.BookableDates(ctx, args.ServiceIDs)
		if err != nil {
			return "", err
		}
		return toolJSON(dates)

	case toolGetBookableTimes:
		var args bookableTimesArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("parse %s arguments: %w", name, err)
		}
		times, err := m.booking.BookableTimes(ctx, args.StaffID, args.Date, args.ServiceIDs)
		if err != nil {
			return "", err
		}
		return toolJSON(times)

	case toolCreateBookRecord:
		var args bookRecordArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("parse %s arguments: %w", name, err)
		}
		if len(args.Appointments) == 0 {
			return "", fmt.Errorf("%s: no appointments given", name)
		}
		appt := args.Appointments[0]
		record, err := m.booking.Book(ctx, m.user, appt.ID, appt.Datetime)
		if err != nil {
			return "", err
		}
		return toolJSON(record)

	default:
		m.logger.Warn(ctx, "assistant requested unknown tool", zap.String("tool", name))
		return fmt.Sprintf("Функция %s не реализована.", name), ErrUnknownTool
	}
}

func toolJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal tool output: %w", err)
	}
	return string(b), nil
}
