package dto

// CreateResourceRequest is the payload accepted by POST /resources.
type CreateResourceRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	SubjectCode string `json:"subjectCode" form:"subjectCode"`
	Header      string `json:"header" form:"header"`
	University  string `json:"university" form:"university" validate:"required"`
	Scheme      string `json:"scheme" form:"scheme"`
	College     string `json:"college" form:"college"`
	Branch      string `json:"branch" form:"branch"`
	Semester    string `json:"semester" form:"semester"`
	Type        string `json:"type" form:"type" validate:"required"`
	FileURL     string `json:"fileUrl" form:"fileUrl" validate:"required"`
}

// UpdateResourceRequest carries a partial resource. Nil fields keep their stored value.
type UpdateResourceRequest struct {
	Name        *string `json:"name"`
	SubjectCode *string `json:"subjectCode"`
	Header      *string `json:"header"`
	University  *string `json:"university"`
	Scheme      *string `json:"scheme"`
	College     *string `json:"college"`
	Branch      *string `json:"branch"`
	Semester    *string `json:"semester"`
	Type        *string `json:"type"`
	FileURL     *string `json:"fileUrl"`
}

// UpdateResourceFromCreate turns a full form submission into an update that
// overwrites every field.
func UpdateResourceFromCreate(req CreateResourceRequest) UpdateResourceRequest {
	return UpdateResourceRequest{
		Name:        &req.Name,
		SubjectCode: &req.SubjectCode,
		Header:      &req.Header,
		University:  &req.University,
		Scheme:      &req.Scheme,
		College:     &req.College,
		Branch:      &req.Branch,
		Semester:    &req.Semester,
		Type:        &req.Type,
		FileURL:     &req.FileURL,
	}
}
