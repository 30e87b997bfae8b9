package controllers

import (
	"net/http"

	"github.com/Prashant8008/Fitness-Ai/middlewares"
	"github.com/Prashant8008/Fitness-Ai/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Trainer    *services.TrainerService
	SampleData *services.SampleDataService
}

func (dc *DashboardController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

func (dc *DashboardController) Dashboard(c *gin.Context) {
	data, err := dc.Trainer.Dashboard(middlewares.UserID(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", data)
}

func (dc *DashboardController) TrainerPage(c *gin.Context) {
	data, err := dc.Trainer.Trainer(middlewares.UserID(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "trainer.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "trainer.html", data)
}

// CreateSampleData seeds demo schedule entries and sends the user to the
// trainer page. Safe to call repeatedly.
func (dc *DashboardController) CreateSampleData(c *gin.Context) {
	if err := dc.SampleData.Seed(middlewares.UserID(c)); err != nil {
		c.HTML(http.StatusInternalServerError, "trainer.html", gin.H{"Error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/trainer")
}

// DashboardAPI returns the dashboard aggregate as JSON.
func (dc *DashboardController) DashboardAPI(c *gin.Context) {
	data, err := dc.Trainer.Dashboard(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}
