package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/usecase"
	"clinic-admin-api/pkg/response"
	"clinic-admin-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxImportSize caps uploaded workbooks at 10 MB
const maxImportSize = 10 << 20

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	importUsecase usecase.DoctorImportUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, importUsecase usecase.DoctorImportUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		importUsecase: importUsecase,
		validator:     validator,
	}
}

// Create handles doctor creation
// @Summary Create a new doctor
// @Description Create a new doctor attached to a clinic
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Create Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/doctors [post]
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrDoctorEmailExists:
			response.Conflict(w, "Doctor email already exists")
		case usecase.ErrNegativeFee:
			response.BadRequest(w, "Professional fee cannot be negative")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

// List handles the filtered doctor listing
// @Summary List doctors
// @Description List doctors with filtering, sorting and pagination
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by name, email or specialty"
// @Param specialty query string false "Filter by specialty"
// @Param clinic_id query string false "Filter by clinic"
// @Param status query string false "Filter by status"
// @Param sort_by query string false "Sort key: name, specialty, fee, created_at"
// @Param sort_dir query string false "Sort direction: asc or desc"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /admin/doctors [get]
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	query := parseListDoctorsQuery(r)

	list, err := h.doctorUsecase.ListDoctors(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDoctorStatus:
			response.BadRequest(w, "Invalid doctor status")
		case usecase.ErrClinicNotFound:
			response.BadRequest(w, "Invalid clinic ID")
		default:
			response.InternalServerError(w, "Failed to get doctors")
		}
		return
	}

	meta := response.NewMeta(query.Page, query.Limit, list.Total)
	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", list, meta)
}

// GetByID handles getting a doctor by ID
// @Summary Get doctor by ID
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [get]
func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// Update handles doctor update
// @Summary Update a doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.UpdateDoctorRequest true "Update Doctor Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [put]
func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrDoctorEmailExists:
			response.Conflict(w, "Doctor email already exists")
		case usecase.ErrNegativeFee:
			response.BadRequest(w, "Professional fee cannot be negative")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// UpdateStatus handles doctor status changes
// @Summary Update doctor status
// @Description Flip a doctor between active, suspended and deactivated
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.UpdateDoctorStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/status [patch]
func (h *DoctorHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctorStatus(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDoctorStatus:
			response.BadRequest(w, "Invalid doctor status")
		default:
			response.InternalServerError(w, "Failed to update doctor status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor status updated successfully", doctor)
}

// Delete handles doctor hard deletion (admin only)
// @Summary Delete a doctor
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [delete]
func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	err = h.doctorUsecase.DeleteDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// DownloadTemplate handles the import template download
// @Summary Download doctor import template
// @Description Download an empty xlsx template for bulk doctor import
// @Tags Doctors
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200
// @Router /admin/doctors/import/template [get]
func (h *DoctorHandler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.importUsecase.GenerateTemplate(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to generate template")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="doctor_import_template.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(template)
}

// Import handles bulk doctor import from an xlsx upload
// @Summary Import doctors from xlsx
// @Description Upload a filled template; invalid rows are reported per row
// @Tags Doctors
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Filled import template"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/doctors/import [post]
func (h *DoctorHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field")
		return
	}
	defer file.Close()

	result, err := h.importUsecase.ImportDoctors(r.Context(), file)
	if err != nil {
		switch err {
		case usecase.ErrInvalidWorkbook:
			response.BadRequest(w, "File is not a valid xlsx workbook")
		case usecase.ErrMissingSheet:
			response.BadRequest(w, "Workbook does not contain a Doctors sheet")
		case usecase.ErrEmptySheet:
			response.BadRequest(w, "Doctors sheet has no data rows")
		default:
			response.InternalServerError(w, "Failed to import doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Import finished", result)
}

func parseListDoctorsQuery(r *http.Request) *dto.ListDoctorsQuery {
	values := r.URL.Query()

	page, _ := strconv.Atoi(values.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(values.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return &dto.ListDoctorsQuery{
		Search:    values.Get("search"),
		Specialty: values.Get("specialty"),
		ClinicID:  values.Get("clinic_id"),
		Status:    values.Get("status"),
		SortBy:    values.Get("sort_by"),
		SortDir:   values.Get("sort_dir"),
		Page:      page,
		Limit:     limit,
	}
}
