// internal/app/features/employees/handler.go
package employees

import (
	"context"

	uierrors "github.com/dalemusser/hrmslite/internal/app/features/errors"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.uber.org/zap"
)

// API is the part of the backend client the employee pages use.
type API interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, emp models.Employee) error
	UpdateEmployee(ctx context.Context, id string, emp models.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

// Handler is the feature-level entry point for Employees.
type Handler struct {
	API    API
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a new Employees handler bound to the API client and logger.
func NewHandler(api API, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    api,
		ErrLog: errLog,
		Log:    logger,
	}
}
