package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/CafeGargoyle/pkg/auth"
	"droscher.com/CafeGargoyle/pkg/mail"
	"droscher.com/CafeGargoyle/pkg/repository"
)

var ErrValidation = errors.New("invalid form input")

type CafeServer struct {
	cafes       repository.CafeRepository
	suggestions mail.Sender
	logger      *zap.Logger
}

func NewCafeServer(cafes repository.CafeRepository, suggestions mail.Sender, logger *zap.Logger) *CafeServer {
	return &CafeServer{cafes: cafes, suggestions: suggestions, logger: logger}
}

func (s *CafeServer) Index(c *gin.Context) {
	cafes, err := s.cafes.ListCafes(c.Request.Context())
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Could not load cafes.")

		return
	}

	userID, _ := auth.CurrentUserID(c)
	c.HTML(http.StatusOK, "index.html", gin.H{"cafes": cafes, "userID": userID})
}

func (s *CafeServer) ShowAddCafe(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", nil)
}

func (s *CafeServer) AddCafe(c *gin.Context) {
	fields, err := cafeFormFields(c)
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())

		return
	}

	if _, err := s.cafes.AddCafe(c.Request.Context(), fields); err != nil {
		renderError(c, http.StatusInternalServerError, "Could not save the cafe.")

		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *CafeServer) ShowEditCafe(c *gin.Context) {
	cafeID, ok := cafeIDParam(c)
	if !ok {
		return
	}

	cafe, err := s.cafes.GetCafeByID(c.Request.Context(), cafeID)
	if err != nil {
		s.renderCafeError(c, cafeID, err)

		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{"cafe": cafe})
}

func (s *CafeServer) EditCafe(c *gin.Context) {
	cafeID, ok := cafeIDParam(c)
	if !ok {
		return
	}

	fields, err := cafeFormFields(c)
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())

		return
	}

	if _, err := s.cafes.UpdateCafe(c.Request.Context(), cafeID, fields); err != nil {
		s.renderCafeError(c, cafeID, err)

		return
	}

	c.Redirect(http.StatusFound, "/")
}

// DeleteCafe deletes on either verb and always redirects home; a missing id
// is indistinguishable from a successful delete.
func (s *CafeServer) DeleteCafe(c *gin.Context) {
	cafeID, ok := cafeIDParam(c)
	if !ok {
		return
	}

	if err := s.cafes.DeleteCafe(c.Request.Context(), cafeID); err != nil {
		renderError(c, http.StatusInternalServerError, "Could not delete the cafe.")

		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *CafeServer) ShowReviewCafe(c *gin.Context) {
	cafeID, ok := cafeIDParam(c)
	if !ok {
		return
	}

	cafe, err := s.cafes.GetCafeByID(c.Request.Context(), cafeID)
	if err != nil {
		s.renderCafeError(c, cafeID, err)

		return
	}

	c.HTML(http.StatusOK, "review.html", gin.H{"cafe": cafe})
}

func (s *CafeServer) ReviewCafe(c *gin.Context) {
	cafeID, ok := cafeIDParam(c)
	if !ok {
		return
	}

	var fieldErr error

	raw := requireField(c, "rating", &fieldErr)
	if fieldErr != nil {
		renderError(c, http.StatusBadRequest, fieldErr.Error())

		return
	}

	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		renderError(c, http.StatusBadRequest, fmt.Sprintf("%v: rating must be a number", ErrValidation))

		return
	}

	if _, err := s.cafes.AddReview(c.Request.Context(), cafeID, rating); err != nil {
		s.renderCafeError(c, cafeID, err)

		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *CafeServer) ShowSuggestCafe(c *gin.Context) {
	c.HTML(http.StatusOK, "user_add.html", nil)
}

func (s *CafeServer) SuggestCafe(c *gin.Context) {
	fields, err := cafeFormFields(c)
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())

		return
	}

	suggestion := mail.Suggestion{
		Name:        fields.Name,
		Location:    fields.Location,
		ImgURL:      fields.ImgURL,
		CoffeePrice: fields.CoffeePrice,
		Detail:      fields.Detail,
		Rating:      0.0,
	}

	if err := s.suggestions.SendSuggestion(c.Request.Context(), suggestion); err != nil {
		renderError(c, http.StatusBadGateway, "Could not send the suggestion, please try again later.")

		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *CafeServer) renderCafeError(c *gin.Context, cafeID uint, err error) {
	if errors.Is(err, repository.ErrCafeNotFound) {
		renderError(c, http.StatusNotFound, fmt.Sprintf("No cafe with id %d.", cafeID))

		return
	}

	s.logger.Error("cafe request failed", zap.Uint("cafe_id", cafeID), zap.Error(err))
	renderError(c, http.StatusInternalServerError, "Something went wrong.")
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"message": message})
	c.Abort()
}

// cafeIDParam parses the :cafe_id path segment; a non-numeric id behaves
// like a missing cafe.
func cafeIDParam(c *gin.Context) (uint, bool) {
	cafeID, err := strconv.ParseUint(c.Param("cafe_id"), 10, 32)
	if err != nil {
		renderError(c, http.StatusNotFound, "No such cafe.")

		return 0, false
	}

	return uint(cafeID), true
}

// cafeFormFields decodes the cafe columns from the form payload. Only field
// presence is validated; empty values are allowed.
func cafeFormFields(c *gin.Context) (repository.CafeFields, error) {
	var err error

	fields := repository.CafeFields{
		Name:        requireField(c, "name", &err),
		Location:    requireField(c, "location", &err),
		ImgURL:      requireField(c, "img_url", &err),
		CoffeePrice: requireField(c, "coffee_price", &err),
		Detail:      requireField(c, "detail", &err),
	}

	return fields, err
}

func requireField(c *gin.Context, name string, errs *error) string {
	value, ok := c.GetPostForm(name)
	if !ok {
		*errs = multierr.Append(*errs, fmt.Errorf("%w: missing field %q", ErrValidation, name))
	}

	return value
}
