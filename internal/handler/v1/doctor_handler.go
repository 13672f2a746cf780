package v1

import (
	"github.com/clinicbook/api/internal/domain/doctor"
	"github.com/clinicbook/api/internal/service"
	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the admin-only roster endpoints; the router gates
// every route here behind CapManageDoctors.
type DoctorHandler struct {
	doctors *service.DoctorService
}

func NewDoctorHandler(doctors *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

// GET /api/v1/doctors
func (h *DoctorHandler) List(c *gin.Context) {
	out, err := h.doctors.ListDoctors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, out)
}

type addDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
}

// POST /api/v1/doctors
func (h *DoctorHandler) Add(c *gin.Context) {
	var req addDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	claims := callerClaims(c)
	d, err := h.doctors.AddDoctor(c.Request.Context(), &doctor.AddDoctorCommand{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		ImageURL:  req.ImageURL,
	}, claims.Email, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, d)
}

// DELETE /api/v1/doctors/:email
func (h *DoctorHandler) Remove(c *gin.Context) {
	claims := callerClaims(c)
	if err := h.doctors.RemoveDoctor(c.Request.Context(), c.Param("email"), claims.Email, c.ClientIP()); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": c.Param("email")})
}
