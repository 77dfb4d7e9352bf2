package app

import (
	"bytes"
	"encoding/json"
	"net/http"
)

func (s *IntegrationTestSuite) Test_ListComponents() {
	resp := s.doJSON(http.MethodGet, "/components", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var env envelope
	s.decode(resp, &env)
	s.JSONEq(`[{"id":1,"title":"summer"}]`, string(env.Data))

	calls := s.backend.callsTo("/test/api/component")
	s.Require().Len(calls, 1)
	s.Equal(http.MethodGet, calls[0].Method)
}

func (s *IntegrationTestSuite) Test_RegisterTile() {
	type TestCase struct {
		Name           string
		Body           string
		ExpectedStatus int
		ExpectedCalls  int
	}

	testCases := []TestCase{
		{Name: "Valid tile", Body: `{"title":"summer","productList":[1,2]}`, ExpectedStatus: http.StatusOK, ExpectedCalls: 1},
		{Name: "Malformed tile", Body: `{"title":`, ExpectedStatus: http.StatusBadRequest, ExpectedCalls: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			s.backend.reset(http.StatusOK)

			req, err := http.NewRequest(http.MethodPost, s.url("/components/tiles"), bytes.NewBufferString(tc.Body))
			s.Require().NoError(err)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			s.Require().NoError(err)
			s.Equal(tc.ExpectedStatus, resp.StatusCode)
			resp.Body.Close()

			calls := s.backend.callsTo("/test/api/component/register/tile")
			s.Require().Len(calls, tc.ExpectedCalls)
			if tc.ExpectedCalls > 0 {
				s.Equal("test-api-key", calls[0].Authorization)
				s.JSONEq(tc.Body, string(calls[0].Body))
			}
		})
	}
}

func (s *IntegrationTestSuite) Test_DeleteComponentUsesGet() {
	resp := s.doJSON(http.MethodDelete, "/components/9", nil)
	s.Equal(http.StatusBadGateway, resp.StatusCode)
	resp.Body.Close()

	calls := s.backend.callsTo("/test/api/component/delete/9")
	s.Require().Len(calls, 1)
	s.Equal(http.MethodGet, calls[0].Method)
}

func (s *IntegrationTestSuite) Test_CreateMainPage() {
	resp := s.doJSON(http.MethodPost, "/main-page", map[string]interface{}{"name": "banner", "order": 1})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var env envelope
	s.decode(resp, &env)
	s.JSONEq(`{"code":200}`, string(env.Data))

	calls := s.backend.callsTo("/test/api/mainPage/create")
	s.Require().Len(calls, 1)
	s.Empty(calls[0].Authorization)

	var sent map[string]interface{}
	s.Require().NoError(json.Unmarshal(calls[0].Body, &sent))
	s.Equal("banner", sent["name"])
}
