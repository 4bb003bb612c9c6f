// Package console serves the server-rendered admin pages for managing study
// resources and live classes.
package console

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	"github.com/kalpavruksha/eduhub-admin/internal/models"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	modeURL  = "url"
	modeFile = "file"
)

var (
	resourceFilterKeys = []string{"university", "branch", "semester", "type"}
	classFilterKeys    = []string{"status", "university", "branch", "semester"}
)

type resourceService interface {
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	Get(ctx context.Context, id string) (*models.Resource, error)
	Create(ctx context.Context, req dto.CreateResourceRequest) (*models.Resource, error)
	Update(ctx context.Context, id string, req dto.UpdateResourceRequest) (*models.Resource, error)
	Delete(ctx context.Context, id string) error
}

type classService interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	Get(ctx context.Context, id string) (*models.Class, error)
	Create(ctx context.Context, req dto.CreateClassRequest) (*models.Class, error)
	Update(ctx context.Context, id string, req dto.UpdateClassRequest) (*models.Class, error)
	Delete(ctx context.Context, id string) error
}

type uploadService interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*dto.UploadResult, error)
	Discard(ctx context.Context, filename string) error
}

type dashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardSummary, error)
}

// Config groups the console collaborators.
type Config struct {
	Resources resourceService
	Classes   classService
	Uploads   uploadService
	Dashboard dashboardService
	// ExportURL is linked from the resource list when set.
	ExportURL string
	Logger    *zap.Logger
}

// Handler renders the console pages and turns form posts into API calls.
type Handler struct {
	resources resourceService
	classes   classService
	uploads   uploadService
	dashboard dashboardService
	exportURL string
	logger    *zap.Logger
	tmpl      *template.Template
	base      string
}

// New parses the embedded templates and returns a console handler.
func New(cfg Config) (*Handler, error) {
	tmpl, err := template.New("console").Funcs(template.FuncMap{
		"label":   label,
		"choices": choices,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		resources: cfg.Resources,
		classes:   cfg.Classes,
		uploads:   cfg.Uploads,
		dashboard: cfg.Dashboard,
		exportURL: cfg.ExportURL,
		logger:    logger,
		tmpl:      tmpl,
	}, nil
}

// Register mounts the console routes on the group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	h.base = strings.TrimRight(rg.BasePath(), "/")

	rg.GET("/", h.Dashboard)
	rg.GET("/resources", h.Resources)
	rg.POST("/resources", h.SaveResource)
	rg.POST("/resources/delete", h.DeleteResource)
	rg.GET("/classes", h.Classes)
	rg.POST("/classes", h.SaveClass)
	rg.POST("/classes/delete", h.DeleteClass)
}

type optionSets struct {
	Universities []models.Option
	Schemes      []models.Option
	Colleges     []models.Option
	Branches     []models.Option
	Semesters    []models.Option
	Types        []models.Option
	Statuses     []models.Option
}

func newOptionSets() optionSets {
	return optionSets{
		Universities: models.UniversityOptions,
		Schemes:      models.SchemeOptions,
		Colleges:     models.CollegeOptions,
		Branches:     models.BranchOptions,
		Semesters:    models.SemesterOptions(),
		Types:        models.ResourceTypeOptions,
		Statuses:     models.ClassStatusOptions,
	}
}

type page struct {
	Title   string
	Active  string
	Base    string
	Notice  string
	Error   string
	Options optionSets
	EditID  string
	// Return is the encoded filter query carried across form posts.
	Return string
}

// ListURL links back to the current list with its filters.
func (p page) ListURL() template.URL {
	u := p.Base + "/" + p.Active
	if p.Return != "" {
		u += "?" + p.Return
	}
	return template.URL(u)
}

// EditURL opens the edit form for id while keeping the filters.
func (p page) EditURL(id string) template.URL {
	q, _ := url.ParseQuery(p.Return)
	q.Set("edit", id)
	return template.URL(p.Base + "/" + p.Active + "?" + q.Encode())
}

type dashboardPage struct {
	page
	Summary *dto.DashboardSummary
}

type resourcePage struct {
	page
	Filter    models.ResourceFilter
	Items     []models.Resource
	Form      dto.CreateResourceRequest
	Mode      string
	ExportURL string
}

type classPage struct {
	page
	Filter models.ClassFilter
	Items  []models.Class
	Form   dto.CreateClassRequest
}

func (h *Handler) newPage(c *gin.Context, title, active string) page {
	return page{
		Title:   title,
		Active:  active,
		Base:    h.base,
		Notice:  c.Query("notice"),
		Error:   c.Query("error"),
		Options: newOptionSets(),
	}
}

// Dashboard shows totals and the latest uploads.
func (h *Handler) Dashboard(c *gin.Context) {
	p := dashboardPage{page: h.newPage(c, "Dashboard", "dashboard"), Summary: &dto.DashboardSummary{}}
	status := http.StatusOK

	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		status = h.fail(c, &p.page, err)
	} else {
		p.Summary = summary
	}
	h.render(c, status, "dashboard", p)
}

// Resources lists resources for the selected filters, optionally with one loaded
// into the edit form.
func (h *Handler) Resources(c *gin.Context) {
	var filter models.ResourceFilter
	bindErr := c.ShouldBindQuery(&filter)

	p := resourcePage{
		page:   h.newPage(c, "Resources", "resources"),
		Filter: filter,
		Mode:   modeURL,
	}
	p.Return = filterQuery(c.Request.URL.Query(), resourceFilterKeys).Encode()
	if bindErr != nil {
		h.renderResources(c, h.fail(c, &p.page, invalidForm(bindErr)), p)
		return
	}

	if id := c.Query("edit"); id != "" {
		resource, err := h.resources.Get(c.Request.Context(), id)
		if err != nil {
			h.fail(c, &p.page, err)
		} else {
			p.EditID = resource.ID
			p.Form = resourceForm(resource)
		}
	}
	h.renderResources(c, http.StatusOK, p)
}

// SaveResource creates or updates a resource from the console form. In file mode
// the PDF is uploaded first and its URL replaces fileUrl.
func (h *Handler) SaveResource(c *gin.Context) {
	ctx := c.Request.Context()

	var form dto.CreateResourceRequest
	bindErr := c.ShouldBindWith(&form, binding.Form)

	id := strings.TrimSpace(c.PostForm("id"))
	mode := c.DefaultPostForm("mode", modeURL)
	returnQuery := returnValues(c, resourceFilterKeys)

	p := resourcePage{page: h.newPage(c, "Resources", "resources"), Form: form, Mode: mode}
	p.EditID = id
	p.Return = returnQuery.Encode()
	p.Filter = models.ResourceFilter{
		University: returnQuery.Get("university"),
		Branch:     returnQuery.Get("branch"),
		Semester:   returnQuery.Get("semester"),
		Type:       returnQuery.Get("type"),
	}
	if bindErr != nil {
		h.renderResources(c, h.fail(c, &p.page, invalidForm(bindErr)), p)
		return
	}

	var uploaded *dto.UploadResult
	if mode == modeFile {
		result, err := h.uploadForm(c)
		if err != nil {
			h.renderResources(c, h.fail(c, &p.page, err), p)
			return
		}
		uploaded = result
		form.FileURL = result.URL
		p.Form.FileURL = result.URL
	}

	var err error
	if id == "" {
		_, err = h.resources.Create(ctx, form)
	} else {
		_, err = h.resources.Update(ctx, id, dto.UpdateResourceFromCreate(form))
	}
	if err != nil {
		if uploaded != nil {
			// the upload is not referenced by any resource
			if discardErr := h.uploads.Discard(ctx, uploaded.Filename); discardErr == nil {
				p.Form.FileURL = ""
			}
		}
		h.renderResources(c, h.fail(c, &p.page, err), p)
		return
	}

	h.redirect(c, "resources", returnQuery, notice("Resource", id))
}

// DeleteResource removes a resource and returns to the list.
func (h *Handler) DeleteResource(c *gin.Context) {
	returnQuery := returnValues(c, resourceFilterKeys)
	if err := h.resources.Delete(c.Request.Context(), c.PostForm("id")); err != nil {
		returnQuery.Set("error", describe(err))
		h.redirect(c, "resources", returnQuery, "")
		return
	}
	h.redirect(c, "resources", returnQuery, "Resource deleted")
}

// Classes lists classes for the selected filters.
func (h *Handler) Classes(c *gin.Context) {
	var filter models.ClassFilter
	bindErr := c.ShouldBindQuery(&filter)

	p := classPage{page: h.newPage(c, "Live Classes", "classes"), Filter: filter}
	p.Return = filterQuery(c.Request.URL.Query(), classFilterKeys).Encode()
	if bindErr != nil {
		h.renderClasses(c, h.fail(c, &p.page, invalidForm(bindErr)), p)
		return
	}

	if id := c.Query("edit"); id != "" {
		class, err := h.classes.Get(c.Request.Context(), id)
		if err != nil {
			h.fail(c, &p.page, err)
		} else {
			p.EditID = class.ID
			p.Form = classForm(class)
		}
	}
	h.renderClasses(c, http.StatusOK, p)
}

// SaveClass creates or updates a class from the console form.
func (h *Handler) SaveClass(c *gin.Context) {
	ctx := c.Request.Context()

	var form dto.CreateClassRequest
	bindErr := c.ShouldBindWith(&form, binding.Form)

	id := strings.TrimSpace(c.PostForm("id"))
	returnQuery := returnValues(c, classFilterKeys)

	p := classPage{page: h.newPage(c, "Live Classes", "classes"), Form: form}
	p.EditID = id
	p.Return = returnQuery.Encode()
	p.Filter = models.ClassFilter{
		University: returnQuery.Get("university"),
		Branch:     returnQuery.Get("branch"),
		Semester:   returnQuery.Get("semester"),
		Status:     returnQuery.Get("status"),
	}
	if bindErr != nil {
		h.renderClasses(c, h.fail(c, &p.page, invalidForm(bindErr)), p)
		return
	}

	var err error
	if id == "" {
		_, err = h.classes.Create(ctx, form)
	} else {
		_, err = h.classes.Update(ctx, id, dto.UpdateClassFromCreate(form))
	}
	if err != nil {
		h.renderClasses(c, h.fail(c, &p.page, err), p)
		return
	}

	h.redirect(c, "classes", returnQuery, notice("Class", id))
}

// DeleteClass removes a class and returns to the list.
func (h *Handler) DeleteClass(c *gin.Context) {
	returnQuery := returnValues(c, classFilterKeys)
	if err := h.classes.Delete(c.Request.Context(), c.PostForm("id")); err != nil {
		returnQuery.Set("error", describe(err))
		h.redirect(c, "classes", returnQuery, "")
		return
	}
	h.redirect(c, "classes", returnQuery, "Class deleted")
}

func (h *Handler) uploadForm(c *gin.Context) (*dto.UploadResult, error) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "No file uploaded")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid upload")
	}
	file, err := header.Open()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message)
	}
	defer file.Close() //nolint:errcheck

	return h.uploads.Upload(c.Request.Context(), header.Filename, file)
}

func (h *Handler) renderResources(c *gin.Context, status int, p resourcePage) {
	items, err := h.resources.List(c.Request.Context(), p.Filter)
	if err != nil {
		status = h.fail(c, &p.page, err)
	}
	p.Items = items
	if h.exportURL != "" {
		q := filterQuery(url.Values{
			"university": {p.Filter.University},
			"branch":     {p.Filter.Branch},
			"semester":   {p.Filter.Semester},
			"type":       {p.Filter.Type},
		}, resourceFilterKeys)
		q.Set("format", "csv")
		p.ExportURL = h.exportURL + "?" + q.Encode()
	}
	h.render(c, status, "resources", p)
}

func (h *Handler) renderClasses(c *gin.Context, status int, p classPage) {
	items, err := h.classes.List(c.Request.Context(), p.Filter)
	if err != nil {
		status = h.fail(c, &p.page, err)
	}
	p.Items = items
	h.render(c, status, "classes", p)
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	c.Header("Cache-Control", "no-store")
	c.Render(status, render.HTML{Template: h.tmpl, Name: name, Data: data})
}

// fail records err on the page and returns the status it maps to. The most
// recent failure wins.
func (h *Handler) fail(c *gin.Context, p *page, err error) int {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		h.logger.Error("console request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	p.Error = describe(err)
	return appErr.Status
}

func (h *Handler) redirect(c *gin.Context, section string, q url.Values, msg string) {
	if msg != "" {
		q.Set("notice", msg)
	}
	target := h.base + "/" + section
	if encoded := q.Encode(); encoded != "" {
		target += "?" + encoded
	}
	c.Redirect(http.StatusSeeOther, target)
}

func invalidForm(err error) error {
	return appErrors.WithDetails(appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid form"), err.Error())
}

func describe(err error) string {
	appErr := appErrors.FromError(err)
	if appErr.Details != "" {
		return appErr.Message + ": " + appErr.Details
	}
	return appErr.Message
}

func notice(kind, id string) string {
	if id == "" {
		return kind + " created"
	}
	return kind + " updated"
}

// returnValues reads the filter query posted back by a console form, keeping only
// known filter keys.
func returnValues(c *gin.Context, keys []string) url.Values {
	q, err := url.ParseQuery(c.PostForm("return"))
	if err != nil {
		return url.Values{}
	}
	return filterQuery(q, keys)
}

func filterQuery(values url.Values, keys []string) url.Values {
	out := url.Values{}
	for _, key := range keys {
		if v := strings.TrimSpace(values.Get(key)); v != "" && v != models.FilterAll {
			out.Set(key, v)
		}
	}
	return out
}

func resourceForm(r *models.Resource) dto.CreateResourceRequest {
	return dto.CreateResourceRequest{
		Name:        r.Name,
		SubjectCode: r.SubjectCode,
		Header:      r.Header,
		University:  string(r.University),
		Scheme:      string(r.Scheme),
		College:     r.College,
		Branch:      string(r.Branch),
		Semester:    string(r.Semester),
		Type:        string(r.Type),
		FileURL:     r.FileURL,
	}
}

func classForm(cl *models.Class) dto.CreateClassRequest {
	return dto.CreateClassRequest{
		Name:       cl.Name,
		Status:     string(cl.Status),
		Schedule:   cl.Schedule,
		Time:       cl.Time,
		University: string(cl.University),
		College:    cl.College,
		Branch:     string(cl.Branch),
		Semester:   string(cl.Semester),
	}
}

type choiceSet struct {
	Options []models.Option
	Current string
}

func choices(options []models.Option, current string) choiceSet {
	return choiceSet{Options: options, Current: current}
}

// label maps a stored value to its display label, falling back to the value.
func label(options []models.Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
