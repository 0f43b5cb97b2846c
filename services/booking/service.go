package booking

import (
	"regexp"
	"strings"
	"time"

	"modernschedule/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deliberately loose: non-space run, "@", non-space run, ".", non-space
// run. Good enough to catch typos, nowhere near RFC 5322.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func (s *DefaultBookingService) Validate(name, email string) models.ValidationResult {
	var errs models.ValidationErrors

	if strings.TrimSpace(name) == "" {
		errs.Name = "Name is required"
	}

	trimmedEmail := strings.TrimSpace(email)
	if trimmedEmail == "" {
		errs.Email = "Email is required"
	} else if !emailPattern.MatchString(trimmedEmail) {
		errs.Email = "Email is invalid"
	}

	return models.ValidationResult{
		Valid:  errs.Name == "" && errs.Email == "",
		Errors: errs,
	}
}

func (s *DefaultBookingService) Book(req models.BookingRequest) (*models.Booking, models.ValidationResult) {
	result := s.Validate(req.Name, req.Email)
	if !result.Valid {
		return nil, result
	}

	record := &models.Booking{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		CreatedAt: time.Now().UTC(),
	}

	s.Logger.Info("Booking submitted",
		zap.String("bookingID", record.ID),
		zap.String("name", record.Name),
		zap.String("email", record.Email),
		zap.String("date", record.Date),
		zap.String("time", record.Time),
	)
	if s.Notifier != nil {
		s.Notifier.Success("Appointment booked successfully!")
	}

	return record, result
}
