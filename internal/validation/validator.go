package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/company-site-api/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Prices are stored as NUMERIC(15,2).
const priceScale = 2

var maxPrice = decimal.New(1, 13)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator provides validation methods for request payloads
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New()

	// Report fields by their wire names rather than Go names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// ValidateLogin validates a login request
func (v *Validator) ValidateLogin(req *models.LoginRequest) []ValidationError {
	req.Username = strings.TrimSpace(req.Username)
	return v.check(req)
}

// ValidateProduct validates a product form and converts it into typed input
func (v *Validator) ValidateProduct(form *models.ProductForm) (*models.ProductInput, []ValidationError) {
	form.ProductCode = strings.TrimSpace(form.ProductCode)
	form.Name = strings.TrimSpace(form.Name)
	form.Price = strings.TrimSpace(form.Price)
	form.CategoryID = strings.TrimSpace(form.CategoryID)

	errs := v.check(form)
	input := &models.ProductInput{
		ProductCode: form.ProductCode,
		Name:        form.Name,
		Description: form.Description,
		Status:      models.ProductStatus(form.Status),
	}

	if !hasField(errs, "price") {
		price, err := decimal.NewFromString(form.Price)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{Field: "price", Message: "price must be a number", Value: form.Price})
		case price.IsNegative():
			errs = append(errs, ValidationError{Field: "price", Message: "price must not be negative", Value: form.Price})
		case !price.Equal(price.Truncate(priceScale)):
			errs = append(errs, ValidationError{Field: "price", Message: "price must have at most 2 decimal places", Value: form.Price})
		case price.GreaterThanOrEqual(maxPrice):
			errs = append(errs, ValidationError{Field: "price", Message: "price must be less than " + maxPrice.String(), Value: form.Price})
		default:
			input.Price = price
		}
	}

	if form.CategoryID != "" && !hasField(errs, "category_id") {
		id, err := strconv.ParseInt(form.CategoryID, 10, 64)
		if err != nil || id <= 0 {
			errs = append(errs, ValidationError{Field: "category_id", Message: "category_id must be a positive integer", Value: form.CategoryID})
		} else {
			input.CategoryID = &id
		}
	}

	if input.Status == "" {
		input.Status = models.ProductStatusActive
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return input, nil
}

// ValidateArticle validates an article form and converts it into typed input
func (v *Validator) ValidateArticle(form *models.ArticleForm) (*models.ArticleInput, []ValidationError) {
	form.Title = strings.TrimSpace(form.Title)

	if errs := v.check(form); len(errs) > 0 {
		return nil, errs
	}

	input := &models.ArticleInput{
		Title:   form.Title,
		Content: form.Content,
		Excerpt: form.Excerpt,
		Status:  models.ArticleStatus(form.Status),
	}
	if input.Status == "" {
		input.Status = models.ArticleStatusDraft
	}
	return input, nil
}

// ValidateFAQ validates a FAQ payload, defaulting its status to active
func (v *Validator) ValidateFAQ(input *models.FAQInput) []ValidationError {
	input.Question = strings.TrimSpace(input.Question)
	input.Answer = strings.TrimSpace(input.Answer)

	if errs := v.check(input); len(errs) > 0 {
		return errs
	}
	if input.Status == "" {
		input.Status = models.FAQStatusActive
	}
	return nil
}

// ValidateCompanyProfile validates a company profile overwrite
func (v *Validator) ValidateCompanyProfile(input *models.CompanyProfileInput) []ValidationError {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Email = strings.TrimSpace(input.Email)
	return v.check(input)
}

// check runs struct-tag validation and flattens the result
func (v *Validator) check(s interface{}) []ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error()}}
	}

	errs := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		ve := ValidationError{Field: fe.Field(), Message: message(fe)}
		if fe.Tag() != "required" {
			ve.Value = fe.Value()
		}
		errs = append(errs, ve)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("invalid %s, must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "numeric", "number":
		return fmt.Sprintf("%s must be a number", fe.Field())
	case "email":
		return "invalid email format"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func hasField(errs []ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
