package app

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/dto"
)

func (s *IntegrationTestSuite) Test_Ping() {
	resp := s.doJSON(http.MethodGet, "/ping", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(resp.Header.Get("X-Request-ID"))
	resp.Body.Close()
}

func (s *IntegrationTestSuite) Test_GetCategories() {
	resp := s.doJSON(http.MethodGet, "/categories", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var categories []string
	s.decodeData(resp, &categories)
	s.Equal([]string{"국내여행", "해외여행"}, categories)
}

// fillForm enters a title, a 2박3일 duration, one course and one ticket.
func (s *IntegrationTestSuite) fillForm(id string) {
	title, nights, days := "Test", "2", "3"
	resp := s.doJSON(http.MethodPut, "/forms/"+id+"/basic", dto.BasicInfoRequest{
		Title:          &title,
		DurationNights: &nights,
		DurationDays:   &days,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.doMultipart("/forms/"+id+"/courses", map[string]string{
		"title":     "Day 1",
		"timeCost":  "3h",
		"latitude":  "37.5665",
		"longitude": "126.9780",
		"content":   "Walking tour",
	}, []multipartFile{{Field: "image", Name: "course.png", Data: testPNG(s.T())}})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var course sectionData
	s.decodeData(resp, &course)
	s.Require().True(course.Committed)

	resp = s.doJSON(http.MethodPost, "/forms/"+id+"/tickets", dto.TicketRequest{
		Title: "Adult",
		PriceList: []domain.PriceRule{
			{StartDate: "2023-06-01", EndDate: "2023-06-30", WeekdayPrices: map[string]string{"토": "20000"}},
		},
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var ticket sectionData
	s.decodeData(resp, &ticket)
	s.Require().True(ticket.Committed)
	s.Require().True(ticket.Form.Submittable)
}

func (s *IntegrationTestSuite) Test_SubmitForm() {
	type TestCase struct {
		Name           string
		BackendStatus  int
		ExpectedStatus int
		ExpectedAlert  string
	}

	testCases := []TestCase{
		{
			Name:           "Backend accepts the product",
			BackendStatus:  http.StatusOK,
			ExpectedStatus: http.StatusOK,
			ExpectedAlert:  dto.AlertStatusSuccess,
		},
		{
			Name:           "Backend fails",
			BackendStatus:  http.StatusInternalServerError,
			ExpectedStatus: http.StatusBadGateway,
			ExpectedAlert:  dto.AlertStatusFailure,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			s.backend.reset(tc.BackendStatus)
			id := s.createForm()
			s.fillForm(id)

			resp := s.doJSON(http.MethodPost, "/forms/"+id+"/submit", nil)
			s.Equal(tc.ExpectedStatus, resp.StatusCode)

			var alert dto.Alert
			s.decode(resp, &alert)
			s.Equal(tc.ExpectedAlert, alert.Status)
			if tc.BackendStatus != http.StatusOK {
				s.Contains(alert.Detail, "500")
				s.Contains(alert.Detail, "product table is locked")
			}

			calls := s.backend.callsTo("/test/api/product/create")
			s.Require().Len(calls, 1)

			var product domain.Product
			s.Require().NoError(json.Unmarshal(calls[0].Body, &product))
			s.Equal("Test", product.Title)
			s.Equal("2박3일", product.Duration)
			s.Equal(int64(9999), product.StartPrice)
			s.Equal("daw916@naver.com", product.Admin)
			s.Len(product.Course, 1)
			s.Len(product.Ticket, 1)
			s.Equal("course.png", product.Course[0].Image.FileName)
		})
	}
}

func (s *IntegrationTestSuite) Test_SubmitIncompleteForm() {
	id := s.createForm()

	resp := s.doJSON(http.MethodPost, "/forms/"+id+"/submit", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var env envelope
	s.decode(resp, &env)
	var missing []string
	s.Require().NoError(json.Unmarshal(env.Errors, &missing))
	s.Equal([]string{"title", "course", "ticket", "durationNights", "durationDays"}, missing)
	s.Empty(s.backend.callsTo("/test/api/product/create"))
}

func (s *IntegrationTestSuite) Test_UnknownForm() {
	resp := s.doJSON(http.MethodGet, "/forms/unknown", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = s.doJSON(http.MethodPost, "/forms/unknown/submit", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *IntegrationTestSuite) Test_DeleteForm() {
	id := s.createForm()

	resp := s.doJSON(http.MethodDelete, "/forms/"+id, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.doJSON(http.MethodGet, "/forms/"+id, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *IntegrationTestSuite) Test_MainImages() {
	id := s.createForm()

	resp := s.doMultipart("/forms/"+id+"/main-images", nil, []multipartFile{
		{Field: "files", Name: "first.png", Data: testPNG(s.T())},
		{Field: "files", Name: "readme.txt", Data: []byte("not an image")},
		{Field: "files", Name: "두번째.png", Data: testPNG(s.T())},
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var added sectionData
	s.decodeData(resp, &added)
	s.True(added.Committed)
	s.Require().Len(added.Form.Product.MainImg, 2)
	s.Equal("first.png", added.Form.Product.MainImg[0].FileName)
	s.Equal("두번째.png", added.Form.Product.MainImg[1].FileName)

	resp = s.doJSON(http.MethodDelete, "/forms/"+id+"/main-images/"+url.PathEscape("first.png"), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var removed sectionData
	s.decodeData(resp, &removed)
	s.True(removed.Committed)
	s.Require().Len(removed.Form.Product.MainImg, 1)
	s.Equal("두번째.png", removed.Form.Product.MainImg[0].FileName)

	resp = s.doMultipart("/forms/"+id+"/main-images", nil, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *IntegrationTestSuite) Test_CourseWithoutImage() {
	id := s.createForm()

	resp := s.doMultipart("/forms/"+id+"/courses", map[string]string{
		"title":    "Day 1",
		"timeCost": "3h",
		"content":  "Walking tour",
	}, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var course sectionData
	s.decodeData(resp, &course)
	s.False(course.Committed)
	s.Empty(course.Form.Product.Course)
}

func (s *IntegrationTestSuite) Test_Categories() {
	id := s.createForm()

	for _, name := range []string{"국내여행", "국내여행", "우주여행"} {
		resp := s.doJSON(http.MethodPost, "/forms/"+id+"/categories", dto.CategoryRequest{Name: name})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := s.doJSON(http.MethodGet, "/forms/"+id, nil)
	var form formData
	s.decodeData(resp, &form)
	s.Equal([]string{"국내여행"}, form.Product.Category)
}

func (s *IntegrationTestSuite) Test_RichText() {
	id := s.createForm()

	resp := s.doJSON(http.MethodPut, "/forms/"+id+"/main-info", dto.RichTextRequest{HTML: "<p>main</p>"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.doJSON(http.MethodPut, "/forms/"+id+"/extra-info", dto.RichTextRequest{HTML: "<p>extra</p>"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var form formData
	s.decodeData(resp, &form)
	s.Equal("<p>main</p>", form.Product.MainInfo)
	s.Equal("<p>extra</p>", form.Product.ExtraInfo)
}

func (s *IntegrationTestSuite) Test_CreateGuide() {
	resp := s.doMultipart("/guides", map[string]string{
		"name":      "Kim",
		"email":     "kim@amuse.com",
		"guideCode": "G-001",
	}, []multipartFile{{Field: "image", Name: "kim.png", Data: testPNG(s.T())}})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var guide dto.GuideResponse
	s.decodeData(resp, &guide)
	s.True(guide.Committed)
	s.Require().NotNil(guide.Guide)
	s.Equal("G-001", guide.Guide.GuideCode)
	s.Require().NotNil(guide.Guide.Image)
	s.Contains(guide.Guide.Image.Base64Data, "data:image/png;base64,")
}
