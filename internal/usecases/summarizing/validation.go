package summarizing

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest confere os parâmetros escalares da requisição
func ValidateRequest(request *domain.AnnualSummaryRequest) error {
	if request == nil {
		return NewSummaryError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "", "requisição vazia")
	}

	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return NewSummaryError(ErrInvalidRequest, apiErrors.ErrInvalidFormat, "", err.Error())
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, requestParams[fieldErr.Field()]+" ("+fieldErr.Tag()+")")
	}

	return NewSummaryError(
		ErrInvalidParameter,
		apiErrors.ErrInvalidFormat,
		requestParams[validationErrors[0].Field()],
		strings.Join(fields, ", "),
	)
}

var requestParams = map[string]string{
	"Year":       "year",
	"Company":    "company",
	"PeriodType": "period_type",
	"Currency":   "currency",
}
