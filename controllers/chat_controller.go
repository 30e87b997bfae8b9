package controllers

import (
	"net/http"

	"github.com/Prashant8008/Fitness-Ai/middlewares"
	"github.com/Prashant8008/Fitness-Ai/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Profiles *services.ProfileService
	Adviser  services.Adviser
}

func (cc *ChatController) ShowChat(c *gin.Context) {
	profile, err := cc.Profiles.Get(middlewares.UserID(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "chat.html", gin.H{
			"Error": err.Error(), "Question": "", "Answer": "",
		})
		return
	}
	c.HTML(http.StatusOK, "chat.html", gin.H{"Profile": profile, "Question": "", "Answer": ""})
}

// Chat forwards the question plus the user's profile to the advice
// backend. Backend failures come back as a degraded answer, never as an
// error page.
func (cc *ChatController) Chat(c *gin.Context) {
	userID := middlewares.UserID(c)

	question := c.PostForm("question")
	profile, err := cc.Profiles.Get(userID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "chat.html", gin.H{
			"Error": err.Error(), "Question": question, "Answer": "",
		})
		return
	}

	var answer string
	if question != "" {
		prompt := services.ComposePrompt(question, profile)
		answer = cc.Adviser.Send(c.Request.Context(), prompt)
	}

	c.HTML(http.StatusOK, "chat.html", gin.H{
		"Question": question,
		"Answer":   answer,
		"Profile":  profile,
	})
}

// ChatAPI is the JSON variant used by the mobile client.
func (cc *ChatController) ChatAPI(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middlewares.UserID(c)
	profile, err := cc.Profiles.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prompt := services.ComposePrompt(body.Message, profile)
	answer := cc.Adviser.Send(c.Request.Context(), prompt)

	c.JSON(http.StatusOK, gin.H{"question": body.Message, "answer": answer})
}
