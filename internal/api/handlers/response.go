package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
	"github.com/vladimiradmaev/quantified-self/internal/services"
	"github.com/vladimiradmaev/quantified-self/internal/utils"
)

func orDefault(status int) int {
	if status == 0 {
		return http.StatusInternalServerError
	}
	return status
}

// writeError logs err and answers with {"error": message}
func writeError(c *gin.Context, errs *apperrors.Handler, err error, codes statusCodes) {
	if errs != nil {
		errs.Handle(c.Request.Context(), err)
	}

	status := http.StatusInternalServerError
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		status = orDefault(codes.validation)
	case apperrors.ErrorTypeNotFound:
		status = orDefault(codes.notFound)
	case apperrors.ErrorTypeInput, apperrors.ErrorTypeDatabase:
		status = orDefault(codes.store)
	}
	c.JSON(status, gin.H{"error": apperrors.MessageOf(err)})
}

// bindPayload decodes a JSON object or urlencoded form body. An empty body
// decodes to an empty payload.
func bindPayload(c *gin.Context) (services.Payload, error) {
	payload := services.Payload{}

	if c.ContentType() == binding.MIMEPOSTForm {
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		for key := range c.Request.PostForm {
			payload[key] = c.Request.PostForm.Get(key)
		}
		return payload, nil
	}

	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return payload, nil
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return services.Payload{}, nil
		}
		return nil, err
	}
	return payload, nil
}

// pathID reads a positive integer path parameter
func pathID(c *gin.Context, name string) (uint, error) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		return 0, apperrors.NewInputError("Invalid id: " + c.Param(name)).WithContext("param", name)
	}
	return id, nil
}

func badBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
}
