package api

import (
	"errors"
	"math"
	"net/http"

	"github.com/banachtech/sabrmc/mc"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/rand"
)

type pricerRequest struct {
	Sigma       float64   `json:"sigma" binding:"required"`
	Vov         float64   `json:"vov"`
	Rho         float64   `json:"rho"`
	Beta        *float64  `json:"beta"`
	Intr        float64   `json:"intr"`
	Dt          float64   `json:"dt"`
	NPath       int       `json:"n_path"`
	Strikes     []float64 `json:"strikes" binding:"required"`
	Spot        float64   `json:"spot" binding:"required"`
	Texp        float64   `json:"texp"`
	Cp          int       `json:"cp"`
	Conditional bool      `json:"conditional"`
	Seed        *uint64   `json:"seed"`
}

// model builds the simulator for a request, applying the documented defaults
// for the fields left out of the body.
func (req *pricerRequest) model() (mc.Model, error) {
	p := mc.DefaultParams(req.Sigma)
	p.Vov, p.Rho, p.Intr = req.Vov, req.Rho, req.Intr
	if req.Beta != nil {
		p.Beta = *req.Beta
	}
	if req.Dt > 0 {
		p.Dt = req.Dt
	}
	if req.NPath > 0 {
		p.NPath = req.NPath
	}
	var src rand.Source
	if req.Seed != nil {
		src = rand.NewSource(*req.Seed)
	}
	return mc.New(p, req.Conditional, src)
}

func (req *pricerRequest) contract() (texp float64, cp int) {
	texp, cp = req.Texp, req.Cp
	if texp == 0 {
		texp = 1.0
	}
	if cp == 0 {
		cp = 1
	}
	return texp, cp
}

func bindPricer(c *gin.Context) (*pricerRequest, bool) {
	var req pricerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return nil, false
	}
	if len(req.Strikes) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(errors.New("strikes must not be empty")))
		return nil, false
	}
	return &req, true
}

func (server *Server) pricer(c *gin.Context) {
	req, ok := bindPricer(c)
	if !ok {
		return
	}

	m, err := req.model()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	texp, cp := req.contract()
	p, err := m.Price(req.Strikes, req.Spot, texp, cp)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "price": p})
}

func (server *Server) smile(c *gin.Context) {
	req, ok := bindPricer(c)
	if !ok {
		return
	}

	m, err := req.model()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	texp, cp := req.contract()
	iv, err := m.VolSmile(req.Strikes, req.Spot, texp, cp)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// strikes whose price falls outside the invertible bracket come back as
	// NaN, which encoding/json cannot represent; send null instead
	out := make([]*float64, len(iv))
	for i := range iv {
		if !math.IsNaN(iv[i]) {
			v := iv[i]
			out[i] = &v
		}
	}
	c.JSON(http.StatusOK, gin.H{"contract": req, "vol": out})
}
