package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create todo request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processToggleReq binds the toggle request body + URI param.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processUpdateTextReq binds the update text request body + URI param.
func (h *handler) processUpdateTextReq(c *gin.Context) (updateTextReq, error) {
	var req updateTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processFilterReq binds the filter request body.
func (h *handler) processFilterReq(c *gin.Context) (filterReq, error) {
	var req filterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the optional filter query parameter.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDispatchReq binds a delegated UI event.
func (h *handler) processDispatchReq(c *gin.Context) (dispatchReq, error) {
	var req dispatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
