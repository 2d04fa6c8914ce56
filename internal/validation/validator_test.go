package validation

import (
	"testing"

	"github.com/company-site-api/internal/models"
)

func TestValidateProduct(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name       string
		form       *models.ProductForm
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid product with all fields",
			form: &models.ProductForm{
				ProductCode: "P001",
				Name:        "Widget",
				Description: "A widget",
				Price:       "1000",
				CategoryID:  "1",
				Status:      "active",
			},
			wantErrors: 0,
		},
		{
			name: "valid product without optional fields",
			form: &models.ProductForm{
				ProductCode: "P002",
				Name:        "Gadget",
				Price:       "12.50",
			},
			wantErrors: 0,
		},
		{
			name: "price with trailing zeros",
			form: &models.ProductForm{
				ProductCode: "P003",
				Name:        "Grinder",
				Price:       "9999999999999.990",
			},
			wantErrors: 0,
		},
		{
			name: "price with three decimal places",
			form: &models.ProductForm{
				ProductCode: "P004",
				Name:        "Scale",
				Price:       "1.239",
			},
			wantErrors: 1,
			wantFields: []string{"price"},
		},
		{
			name: "price too large for storage",
			form: &models.ProductForm{
				ProductCode: "P005",
				Name:        "Roaster",
				Price:       "10000000000000",
			},
			wantErrors: 1,
			wantFields: []string{"price"},
		},
		{
			name: "missing product_code and name",
			form: &models.ProductForm{
				ProductCode: "   ",
				Price:       "10",
			},
			wantErrors: 2,
			wantFields: []string{"product_code", "name"},
		},
		{
			name: "non-numeric price",
			form: &models.ProductForm{
				ProductCode: "P003",
				Name:        "Widget",
				Price:       "ten",
			},
			wantErrors: 1,
			wantFields: []string{"price"},
		},
		{
			name: "negative price",
			form: &models.ProductForm{
				ProductCode: "P003",
				Name:        "Widget",
				Price:       "-1",
			},
			wantErrors: 1,
			wantFields: []string{"price"},
		},
		{
			name: "invalid status",
			form: &models.ProductForm{
				ProductCode: "P004",
				Name:        "Widget",
				Price:       "1",
				Status:      "archived",
			},
			wantErrors: 1,
			wantFields: []string{"status"},
		},
		{
			name: "zero category id",
			form: &models.ProductForm{
				ProductCode: "P005",
				Name:        "Widget",
				Price:       "1",
				CategoryID:  "0",
			},
			wantErrors: 1,
			wantFields: []string{"category_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, errors := validator.ValidateProduct(tt.form)

			if len(errors) != tt.wantErrors {
				t.Fatalf("Expected %d errors, got %d: %+v", tt.wantErrors, len(errors), errors)
			}
			if tt.wantErrors == 0 && input == nil {
				t.Fatal("Expected input for a valid form")
			}
			if tt.wantErrors > 0 && input != nil {
				t.Error("Expected no input for an invalid form")
			}

			for i, field := range tt.wantFields {
				if errors[i].Field != field {
					t.Errorf("Expected error on field %s, got %s", field, errors[i].Field)
				}
			}
		})
	}
}

func TestValidateProduct_Defaults(t *testing.T) {
	validator := NewValidator()

	input, errors := validator.ValidateProduct(&models.ProductForm{
		ProductCode: " P001 ",
		Name:        "Widget",
		Price:       "1000",
		CategoryID:  "3",
	})
	if len(errors) != 0 {
		t.Fatalf("Unexpected errors: %+v", errors)
	}

	if input.ProductCode != "P001" {
		t.Errorf("Expected trimmed product code, got %q", input.ProductCode)
	}
	if input.Status != models.ProductStatusActive {
		t.Errorf("Expected default status active, got %s", input.Status)
	}
	if input.CategoryID == nil || *input.CategoryID != 3 {
		t.Errorf("Expected category id 3, got %v", input.CategoryID)
	}
	if input.Price.String() != "1000" {
		t.Errorf("Expected price 1000, got %s", input.Price)
	}
}

func TestValidateArticle(t *testing.T) {
	validator := NewValidator()

	input, errors := validator.ValidateArticle(&models.ArticleForm{Title: "Hello", Content: "Body"})
	if len(errors) != 0 {
		t.Fatalf("Unexpected errors: %+v", errors)
	}
	if input.Status != models.ArticleStatusDraft {
		t.Errorf("Expected default status draft, got %s", input.Status)
	}

	_, errors = validator.ValidateArticle(&models.ArticleForm{Title: "Hello", Content: "Body", Status: "active"})
	if len(errors) != 1 || errors[0].Field != "status" {
		t.Errorf("Expected status error, got %+v", errors)
	}
	if errors[0].Message != "invalid status, must be one of: draft, published" {
		t.Errorf("Unexpected message: %s", errors[0].Message)
	}

	_, errors = validator.ValidateArticle(&models.ArticleForm{})
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for empty article, got %d", len(errors))
	}
}

func TestValidateFAQ(t *testing.T) {
	validator := NewValidator()

	faq := &models.FAQInput{Question: "Do you ship abroad?", Answer: "Yes", OrderIndex: 2}
	if errors := validator.ValidateFAQ(faq); len(errors) != 0 {
		t.Fatalf("Unexpected errors: %+v", errors)
	}
	if faq.Status != models.FAQStatusActive {
		t.Errorf("Expected default status active, got %s", faq.Status)
	}

	errors := validator.ValidateFAQ(&models.FAQInput{Question: "Q", Answer: "A", OrderIndex: -1})
	if len(errors) != 1 || errors[0].Field != "order_index" {
		t.Errorf("Expected order_index error, got %+v", errors)
	}
}

func TestValidateCompanyProfile(t *testing.T) {
	validator := NewValidator()
	year := 1999

	errors := validator.ValidateCompanyProfile(&models.CompanyProfileInput{
		CompanyName:     "Acme Export",
		Email:           "info@acme.test",
		EstablishedYear: &year,
	})
	if len(errors) != 0 {
		t.Fatalf("Unexpected errors: %+v", errors)
	}

	errors = validator.ValidateCompanyProfile(&models.CompanyProfileInput{
		CompanyName: "Acme Export",
		Email:       "not-an-email",
	})
	if len(errors) != 1 || errors[0].Field != "email" {
		t.Errorf("Expected email error, got %+v", errors)
	}
	if errors[0].Value != "not-an-email" {
		t.Errorf("Expected offending value to be reported, got %v", errors[0].Value)
	}
}

func TestValidateLogin(t *testing.T) {
	validator := NewValidator()

	errors := validator.ValidateLogin(&models.LoginRequest{Username: " ", Password: ""})
	if len(errors) != 2 {
		t.Fatalf("Expected 2 errors, got %+v", errors)
	}
	if errors[0].Message != "username is required" {
		t.Errorf("Unexpected message: %s", errors[0].Message)
	}
}
