package models

// CompanyProfileID is the id of the only company_profile row
const CompanyProfileID = 1

// CompanyProfile holds the singleton company metadata
type CompanyProfile struct {
	ID                int64  `json:"id" db:"id"`
	CompanyName       string `json:"company_name" db:"company_name"`
	Phone             string `json:"phone" db:"phone"`
	Email             string `json:"email" db:"email"`
	Address           string `json:"address" db:"address"`
	Description       string `json:"description" db:"description"`
	EstablishedYear   *int   `json:"established_year" db:"established_year"`
	Director          string `json:"director" db:"director"`
	PresidentDirector string `json:"president_director" db:"president_director"`
	Location          string `json:"location" db:"location"`
}

// CompanyProfileInput is the full-row overwrite payload of PUT /company
type CompanyProfileInput struct {
	CompanyName       string `json:"company_name" validate:"required,max=255"`
	Phone             string `json:"phone" validate:"max=50"`
	Email             string `json:"email" validate:"omitempty,email,max=255"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	EstablishedYear   *int   `json:"established_year" validate:"omitempty,gte=1800,lte=2200"`
	Director          string `json:"director" validate:"max=255"`
	PresidentDirector string `json:"president_director" validate:"max=255"`
	Location          string `json:"location"`
}

// Profile converts the input into the row it overwrites
func (in *CompanyProfileInput) Profile() *CompanyProfile {
	return &CompanyProfile{
		ID:                CompanyProfileID,
		CompanyName:       in.CompanyName,
		Phone:             in.Phone,
		Email:             in.Email,
		Address:           in.Address,
		Description:       in.Description,
		EstablishedYear:   in.EstablishedYear,
		Director:          in.Director,
		PresidentDirector: in.PresidentDirector,
		Location:          in.Location,
	}
}
