package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"time"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	resumeField  = "resume"
	xlsxMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ApplicationHandler struct {
	uc        usecase.ApplicationUsecase
	maxResume int64
	now       func() time.Time
}

func NewApplicationHandler(uc usecase.ApplicationUsecase, maxResumeBytes int64) *ApplicationHandler {
	if maxResumeBytes <= 0 {
		maxResumeBytes = usecase.DefaultMaxResumeBytes
	}
	return &ApplicationHandler{uc: uc, maxResume: maxResumeBytes, now: time.Now}
}

func (h *ApplicationHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.HandleCreate)
}

// RegisterAdminRoutes mounts the admin reads behind gate. The listing is
// only gated when listGated is set.
func (h *ApplicationHandler) RegisterAdminRoutes(r fiber.Router, gate fiber.Handler, listGated bool) {
	if r == nil || gate == nil {
		return
	}
	if listGated {
		r.Get("/", gate, h.HandleList)
	} else {
		r.Get("/", h.HandleList)
	}
	r.Get("/export", gate, h.HandleExport)
	r.Get("/resumes/:key", gate, h.HandleResume)
}

type createApplicationRequest struct {
	Job         string `json:"job"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CoverLetter string `json:"coverLetter"`
}

// HandleCreate accepts either a JSON body or a multipart form with an
// optional "resume" file.
func (h *ApplicationHandler) HandleCreate(c fiber.Ctx) error {
	var (
		in     usecase.ApplicationInput
		resume *usecase.ResumeUpload
	)

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Malformed multipart body", nil, err)
		}
		in = usecase.ApplicationInput{
			Job:         formValue(form, "job"),
			Name:        formValue(form, "name"),
			Email:       formValue(form, "email"),
			CoverLetter: formValue(form, "coverLetter"),
		}
		if files := form.File[resumeField]; len(files) > 0 {
			resume, err = h.readResume(files[0])
			if err != nil {
				return middleware.NewAppError(fiber.StatusBadRequest, "Could not read resume", nil, err)
			}
		}
	} else {
		var req createApplicationRequest
		if err := decodeJSONStrict(c, &req); err != nil {
			return err
		}
		in = usecase.ApplicationInput(req)
	}

	a, err := h.uc.CreateApplication(c.Context(), in, resume)
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(a))
}

// readResume buffers the upload. Files over the ceiling are not read; the
// usecase rejects them from the declared size.
func (h *ApplicationHandler) readResume(fh *multipart.FileHeader) (*usecase.ResumeUpload, error) {
	up := &usecase.ResumeUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
	}
	if fh.Size > h.maxResume {
		return up, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	b, err := io.ReadAll(io.LimitReader(f, h.maxResume+1))
	if err != nil {
		return nil, err
	}
	up.Content = b
	if int64(len(b)) > up.Size {
		up.Size = int64(len(b))
	}
	return up, nil
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func (h *ApplicationHandler) HandleList(c fiber.Ctx) error {
	items, err := h.uc.ListApplications(c.Context())
	if err != nil {
		return mapUsecaseError(err, response.MessageNotFound)
	}
	return response.Success(c, fiber.StatusOK, "", dto.NewApplicationListResponse(items))
}

func (h *ApplicationHandler) HandleExport(c fiber.Ctx) error {
	b, err := h.uc.ExportApplicationsXLSX(c.Context())
	if err != nil {
		return mapUsecaseError(err, response.MessageNotFound)
	}

	c.Attachment(fmt.Sprintf("applications-%s.xlsx", h.now().UTC().Format("20060102-150405")))
	c.Set(fiber.HeaderContentType, xlsxMIMEType)
	return c.Status(fiber.StatusOK).Send(b)
}

func (h *ApplicationHandler) HandleResume(c fiber.Ctx) error {
	res, err := h.uc.GetResume(c.Context(), c.Params("key"))
	if err != nil {
		return mapUsecaseError(err, "Resume not found")
	}

	c.Attachment(res.Filename)
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(res.Content)))
	return c.Status(fiber.StatusOK).Send(res.Content)
}
