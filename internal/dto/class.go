package dto

// CreateClassRequest is the payload accepted by POST /classes.
type CreateClassRequest struct {
	Name       string `json:"name" form:"name" validate:"required"`
	Status     string `json:"status" form:"status" validate:"required"`
	Schedule   string `json:"schedule" form:"schedule" validate:"required"`
	Time       string `json:"time" form:"time" validate:"required"`
	University string `json:"university" form:"university" validate:"required"`
	College    string `json:"college" form:"college"`
	Branch     string `json:"branch" form:"branch" validate:"required"`
	Semester   string `json:"semester" form:"semester" validate:"required"`
}

// UpdateClassRequest carries a partial class. Nil fields keep their stored value.
type UpdateClassRequest struct {
	Name       *string `json:"name"`
	Status     *string `json:"status"`
	Schedule   *string `json:"schedule"`
	Time       *string `json:"time"`
	University *string `json:"university"`
	College    *string `json:"college"`
	Branch     *string `json:"branch"`
	Semester   *string `json:"semester"`
}

// UpdateClassFromCreate turns a full form submission into an overwrite.
func UpdateClassFromCreate(req CreateClassRequest) UpdateClassRequest {
	return UpdateClassRequest{
		Name:       &req.Name,
		Status:     &req.Status,
		Schedule:   &req.Schedule,
		Time:       &req.Time,
		University: &req.University,
		College:    &req.College,
		Branch:     &req.Branch,
		Semester:   &req.Semester,
	}
}
