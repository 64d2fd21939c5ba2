package model

import "time"

// AdmissionModel mirrors the admissions table: one row per submitted
// application, reviewed from the dashboard.
type AdmissionModel struct {
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`

	// Student information
	ClassApplying   string `gorm:"column:class_applying;type:varchar(50)" json:"class_applying"`
	StudentName     string `gorm:"column:student_name;type:varchar(255);not null" json:"student_name"`
	FatherName      string `gorm:"column:father_name;type:varchar(255)" json:"father_name"`
	GrandfatherName string `gorm:"column:grandfather_name;type:varchar(255)" json:"grandfather_name"`
	TribeName       string `gorm:"column:tribe_name;type:varchar(255)" json:"tribe_name"`
	Nationality     string `gorm:"column:nationality;type:varchar(100)" json:"nationality"`
	DateOfBirth     string `gorm:"column:date_of_birth;type:varchar(50)" json:"date_of_birth"`
	PlaceOfBirth    string `gorm:"column:place_of_birth;type:varchar(255)" json:"place_of_birth"`
	Gender          string `gorm:"column:gender;type:varchar(20)" json:"gender"`
	Religion        string `gorm:"column:religion;type:varchar(100)" json:"religion"`
	Remarks         string `gorm:"column:remarks;type:text" json:"remarks"`

	// Father contact
	ParentName       string `gorm:"column:parent_name;type:varchar(255)" json:"parent_name"`
	MobileNumber     string `gorm:"column:mobile_number;type:varchar(50)" json:"mobile_number"`
	WorkMobileNumber string `gorm:"column:work_mobile_number;type:varchar(50)" json:"work_mobile_number"`
	Job              string `gorm:"column:job;type:varchar(255)" json:"job"`
	PlaceOfWork      string `gorm:"column:place_of_work;type:varchar(255)" json:"place_of_work"`

	// Mother contact
	MotherName             string `gorm:"column:mother_name;type:varchar(255)" json:"mother_name"`
	MotherMobileNumber     string `gorm:"column:mother_mobile_number;type:varchar(50)" json:"mother_mobile_number"`
	MotherWorkMobileNumber string `gorm:"column:mother_work_mobile_number;type:varchar(50)" json:"mother_work_mobile_number"`
	MotherJob              string `gorm:"column:mother_job;type:varchar(255)" json:"mother_job"`
	MotherPlaceOfWork      string `gorm:"column:mother_place_of_work;type:varchar(255)" json:"mother_place_of_work"`

	// Additional relative
	RelativeName  string `gorm:"column:relative_name;type:varchar(255)" json:"relative_name"`
	RelativePhone string `gorm:"column:relative_phone;type:varchar(50)" json:"relative_phone"`

	// Previous education
	PreviousSchool string `gorm:"column:previous_school;type:varchar(255)" json:"previous_school"`

	// Transport and home data
	Region             string `gorm:"column:region;type:varchar(255)" json:"region"`
	VillageNo          string `gorm:"column:village_no;type:varchar(50)" json:"village_no"`
	HouseNumber        string `gorm:"column:house_number;type:varchar(50)" json:"house_number"`
	SiteDescription    string `gorm:"column:site_description;type:text" json:"site_description"`
	SchoolTransport    string `gorm:"column:school_transport;type:varchar(50)" json:"school_transport"`
	TransportationType string `gorm:"column:transportation_type;type:varchar(50)" json:"transportation_type"`
	TripType           string `gorm:"column:trip_type;type:varchar(50)" json:"trip_type"`

	// Uploaded documents (public URLs; null when not supplied)
	BirthCertificateURL *string `gorm:"column:birth_certificate_url;type:text" json:"birth_certificate_url"`
	VaccinationCardURL  *string `gorm:"column:vaccination_card_url;type:text" json:"vaccination_card_url"`
	PassportURL         *string `gorm:"column:passport_url;type:text" json:"passport_url"`
	ParentIDURL         *string `gorm:"column:parent_id_url;type:text" json:"parent_id_url"`
	HousePhotoURL       *string `gorm:"column:house_photo_url;type:text" json:"house_photo_url"`

	Status    string    `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdmissionModel) TableName() string {
	return "admissions"
}
