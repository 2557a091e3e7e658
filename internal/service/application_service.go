package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/clc-api/internal/dto"
	"github.com/noah-isme/clc-api/internal/models"
	"github.com/noah-isme/clc-api/internal/repository"
	appErrors "github.com/noah-isme/clc-api/pkg/errors"
)

type applicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	FindByStudent(ctx context.Context, studentID string) (*models.Application, error)
	FindDetailByStudent(ctx context.Context, studentID string) (*models.ApplicationDetail, error)
	ConfirmPayment(ctx context.Context, studentID, paymentID string, amount float64, mode string, paidAt time.Time) (*models.Application, error)
}

type marksheetUploader interface {
	Accept(ctx context.Context, filename string, size int64, body io.Reader) (string, error)
	ResolveURL(ref string) (string, error)
}

// MarksheetUpload describes the file part of a submission.
type MarksheetUpload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// PaymentPolicy holds the simulated payment defaults. A FeeAmount of zero
// disables the amount check.
type PaymentPolicy struct {
	DefaultMode string
	FeeAmount   float64
}

// ApplicationService drives the submit -> pay -> print workflow.
type ApplicationService struct {
	apps      applicationStore
	uploads   marksheetUploader
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	payment   PaymentPolicy
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(apps applicationStore, uploads marksheetUploader, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, payment PaymentPolicy) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if payment.DefaultMode == "" {
		payment.DefaultMode = "Online"
	}
	return &ApplicationService{
		apps:      apps,
		uploads:   uploads,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		payment:   payment,
	}
}

// Submit creates the student's application in the unpaid state. The
// marksheet upload must succeed first; if it does and the insert still
// fails, the error is reported and the stored file is left orphaned (it is
// harmless and never referenced). The unique constraint in the store makes
// concurrent duplicate submissions lose cleanly.
func (s *ApplicationService) Submit(ctx context.Context, studentID string, req dto.SubmitApplicationRequest, upload MarksheetUpload) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.apps.FindByStudent(ctx, studentID); err == nil {
		return nil, appErrors.Clone(appErrors.ErrAlreadySubmitted, "")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing application")
	}

	if upload.Body == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "marksheet image is required")
	}

	url, err := s.uploads.Accept(ctx, upload.Filename, upload.Size, upload.Body)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	app := &models.Application{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Address: models.Address{
			Village:       req.Village,
			PostOffice:    req.PostOffice,
			PoliceStation: req.PoliceStation,
			District:      req.District,
			State:         req.State,
			PinCode:       req.PinCode,
		},
		MarksheetURL: url,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.apps.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return nil, appErrors.Clone(appErrors.ErrAlreadySubmitted, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save application")
	}

	if s.metrics != nil {
		s.metrics.IncApplicationSubmitted()
	}
	s.logger.Info("application submitted", zap.String("student_id", studentID), zap.String("application_id", app.ID))

	out := *app
	s.attachMarksheetLink(&out)
	return &out, nil
}

// ConfirmPayment records the simulated gateway result, setting all four
// payment fields atomically. A repeat call fails with ALREADY_PAID rather
// than re-recording.
func (s *ApplicationService) ConfirmPayment(ctx context.Context, studentID string, req dto.ConfirmPaymentRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if s.payment.FeeAmount > 0 && req.PaymentAmount != s.payment.FeeAmount {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("paymentAmount must equal the application fee of %.2f", s.payment.FeeAmount))
	}

	app, err := s.apps.ConfirmPayment(ctx, studentID, req.PaymentID, req.PaymentAmount, s.payment.DefaultMode, time.Now().UTC())
	if err == nil {
		if s.metrics != nil {
			s.metrics.IncPaymentConfirmed()
		}
		s.logger.Info("payment confirmed", zap.String("student_id", studentID), zap.String("payment_id", req.PaymentID))
		s.attachMarksheetLink(app)
		return app, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to confirm payment")
	}

	// Nothing updated: either the application is already paid or it does
	// not exist. Distinguish the two for the caller.
	if _, err := s.apps.FindByStudent(ctx, studentID); err == nil {
		return nil, appErrors.Clone(appErrors.ErrAlreadyPaid, "")
	} else if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Clone(appErrors.ErrNoApplication, "")
	} else {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}
}

// MyApplication returns the paid application joined with the student
// profile. An unpaid application is withheld with PAYMENT_REQUIRED so the
// receipt can never show an incomplete workflow.
func (s *ApplicationService) MyApplication(ctx context.Context, studentID string) (*models.ApplicationDetail, error) {
	detail, err := s.apps.FindDetailByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNoApplication, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}

	if !detail.Paid() {
		return nil, appErrors.Clone(appErrors.ErrPaymentRequired, "")
	}

	s.attachMarksheetLink(&detail.Application)
	return detail, nil
}

// attachMarksheetLink swaps the stored marksheet reference for a fetchable
// URL before the application leaves the service. Best-effort: responses fall
// back to the raw reference rather than failing a completed operation.
func (s *ApplicationService) attachMarksheetLink(app *models.Application) {
	if app == nil || app.MarksheetURL == "" || s.uploads == nil {
		return
	}
	url, err := s.uploads.ResolveURL(app.MarksheetURL)
	if err != nil {
		s.logger.Warn("failed to resolve marksheet link", zap.String("application_id", app.ID), zap.Error(err))
		return
	}
	app.MarksheetURL = url
}

// validationError converts validator output into a field-naming message.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return appErrors.Clone(appErrors.ErrValidation, "missing or invalid field(s): "+strings.Join(fields, ", "))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
}
