package dto

import (
	"alwantayf_backend/internals/features/admissions/model"
)

// ============================
// Submission request (multipart text fields)
// ============================
// The public form posts camelCase field names; the struct tags are the
// one and only mapping to the snake_case columns, no dynamic lookups.

type CreateAdmissionRequest struct {
	// Student information
	ClassApplying   string `form:"classApplying" validate:"required,max=50"`
	StudentName     string `form:"studentName" validate:"required,max=255"`
	FatherName      string `form:"fatherName" validate:"max=255"`
	GrandfatherName string `form:"grandfatherName" validate:"max=255"`
	TribeName       string `form:"tribeName" validate:"max=255"`
	Nationality     string `form:"nationality" validate:"max=100"`
	DateOfBirth     string `form:"dateOfBirth" validate:"max=50"`
	PlaceOfBirth    string `form:"placeOfBirth" validate:"max=255"`
	Gender          string `form:"gender" validate:"max=20"`
	Religion        string `form:"religion" validate:"max=100"`
	Remarks         string `form:"remarks"`

	// Father information
	ParentName       string `form:"parentName" validate:"max=255"`
	MobileNumber     string `form:"mobileNumber" validate:"max=50"`
	WorkMobileNumber string `form:"workMobileNumber" validate:"max=50"`
	Job              string `form:"job" validate:"max=255"`
	PlaceOfWork      string `form:"placeOfWork" validate:"max=255"`

	// Mother information
	MotherName             string `form:"motherName" validate:"max=255"`
	MotherMobileNumber     string `form:"motherMobileNumber" validate:"max=50"`
	MotherWorkMobileNumber string `form:"motherWorkMobileNumber" validate:"max=50"`
	MotherJob              string `form:"motherJob" validate:"max=255"`
	MotherPlaceOfWork      string `form:"motherPlaceOfWork" validate:"max=255"`

	// Relative information
	RelativeName  string `form:"relativeName" validate:"max=255"`
	RelativePhone string `form:"relativePhone" validate:"max=50"`

	// Previous education
	PreviousSchool string `form:"previousSchool" validate:"max=255"`

	// Transport and home data
	Region             string `form:"region" validate:"max=255"`
	VillageNo          string `form:"villageNo" validate:"max=50"`
	HouseNumber        string `form:"houseNumber" validate:"max=50"`
	SiteDescription    string `form:"siteDescription"`
	SchoolTransport    string `form:"schoolTransport" validate:"max=50"`
	TransportationType string `form:"transportationType" validate:"max=50"`
	TripType           string `form:"tripType" validate:"max=50"`
}

// ToModel converts the form payload into a row. Status is NOT taken from
// the client here; the service forces it to pending.
func (r CreateAdmissionRequest) ToModel() model.AdmissionModel {
	return model.AdmissionModel{
		ClassApplying:   r.ClassApplying,
		StudentName:     r.StudentName,
		FatherName:      r.FatherName,
		GrandfatherName: r.GrandfatherName,
		TribeName:       r.TribeName,
		Nationality:     r.Nationality,
		DateOfBirth:     r.DateOfBirth,
		PlaceOfBirth:    r.PlaceOfBirth,
		Gender:          r.Gender,
		Religion:        r.Religion,
		Remarks:         r.Remarks,

		ParentName:       r.ParentName,
		MobileNumber:     r.MobileNumber,
		WorkMobileNumber: r.WorkMobileNumber,
		Job:              r.Job,
		PlaceOfWork:      r.PlaceOfWork,

		MotherName:             r.MotherName,
		MotherMobileNumber:     r.MotherMobileNumber,
		MotherWorkMobileNumber: r.MotherWorkMobileNumber,
		MotherJob:              r.MotherJob,
		MotherPlaceOfWork:      r.MotherPlaceOfWork,

		RelativeName:  r.RelativeName,
		RelativePhone: r.RelativePhone,

		PreviousSchool: r.PreviousSchool,

		Region:             r.Region,
		VillageNo:          r.VillageNo,
		HouseNumber:        r.HouseNumber,
		SiteDescription:    r.SiteDescription,
		SchoolTransport:    r.SchoolTransport,
		TransportationType: r.TransportationType,
		TripType:           r.TripType,
	}
}

// ============================
// Review request
// ============================

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ============================
// Document form fields
// ============================

// FileFields lists the five document form fields in submission order.
var FileFields = []string{
	"birthCertificate",
	"vaccinationCard",
	"passport",
	"parentId",
	"housePhoto",
}

// SetFileURL assigns an uploaded document URL to its column.
func SetFileURL(m *model.AdmissionModel, field, url string) {
	switch field {
	case "birthCertificate":
		m.BirthCertificateURL = &url
	case "vaccinationCard":
		m.VaccinationCardURL = &url
	case "passport":
		m.PassportURL = &url
	case "parentId":
		m.ParentIDURL = &url
	case "housePhoto":
		m.HousePhotoURL = &url
	}
}
