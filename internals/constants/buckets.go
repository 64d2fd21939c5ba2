package constants

// Storage buckets (must exist in the storage service; public read)
const (
	DocumentsBucket  = "documents"   // admission document scans
	NewsImagesBucket = "news-images" // dashboard media uploads
)

// AdmissionsFolder is the logical folder for admission documents inside
// the documents bucket.
const AdmissionsFolder = "admissions"
