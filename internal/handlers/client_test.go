package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ayatori/clientdesk/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ClientHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	manager *models.User
	worker  *models.User
}

func (s *ClientHandlerTestSuite) SetupTest() {
	s.env = setupTestEnv(s.T())
	s.manager = s.env.createUser(s.T(), "manager@example.com", "Manager", true)
	s.worker = s.env.createUser(s.T(), "worker@example.com", "Worker", false)
}

func (s *ClientHandlerTestSuite) routerAs(user *models.User) *gin.Engine {
	r := authedRouter(user)
	r.GET("/clients", s.env.clientHandler.ListClients)
	r.GET("/client/:id", s.env.clientHandler.ClientProfile)
	r.POST("/add_client", s.env.clientHandler.AddClient)
	r.POST("/add_onboarding_task/:client_id", s.env.clientHandler.AddOnboardingTask)
	r.POST("/add_content_idea/:client_id", s.env.clientHandler.AddContentIdea)
	r.POST("/add_metric/:client_id", s.env.clientHandler.AddMetric)
	return r
}

func (s *ClientHandlerTestSuite) post(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (s *ClientHandlerTestSuite) TestAddClientNotifiesManagers() {
	r := s.routerAs(s.worker)

	form := url.Values{}
	form.Set("name", "Acme Corp")
	form.Set("contact_number", "555-0100")
	form.Set("business_category", "Retail")
	form.Set("social_media_handles", "@acme")
	form.Set("goals", "Grow reach")
	form.Set("specific_requests", "Weekly reports")

	w := s.post(r, "/add_client", form)

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/clients", w.Header().Get("Location"))

	var client models.Client
	s.Require().NoError(s.env.db.Where("name = ?", "Acme Corp").First(&client).Error)
	s.Equal(s.worker.ID, client.UserID)
	s.Equal(models.ClientStatusActive, client.Status)

	// Managers are notified, the creating worker is not.
	s.EqualValues(1, s.env.countNotifications(s.T(), s.manager.ID))
	s.EqualValues(0, s.env.countNotifications(s.T(), s.worker.ID))

	var note models.Notification
	s.Require().NoError(s.env.db.Where("user_id = ?", s.manager.ID).First(&note).Error)
	s.Equal(`A new client "Acme Corp" has been added by Worker`, note.Message)
	s.Equal(models.NotificationClientAdded, note.Type)
}

func (s *ClientHandlerTestSuite) TestAddClientMissingFields() {
	r := s.routerAs(s.worker)

	form := url.Values{}
	form.Set("name", "Acme Corp")

	w := s.post(r, "/add_client", form)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "All fields are required")

	var count int64
	s.Require().NoError(s.env.db.Model(&models.Client{}).Count(&count).Error)
	s.Zero(count)
}

func (s *ClientHandlerTestSuite) TestListClientsScopedByRole() {
	mine := s.env.createClient(s.T(), s.worker.ID, "Acme Corp")
	theirs := s.env.createClient(s.T(), s.manager.ID, "Globex")

	// Workers only see their own clients.
	r := s.routerAs(s.worker)
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), mine.Name)
	s.NotContains(w.Body.String(), theirs.Name)

	// Managers see everything.
	r = s.routerAs(s.manager)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), mine.Name)
	s.Contains(w.Body.String(), theirs.Name)
}

func (s *ClientHandlerTestSuite) TestClientProfileShowsRecords() {
	client := s.env.createClient(s.T(), s.worker.ID, "Acme Corp")
	s.Require().NoError(s.env.db.Create(&models.OnboardingTask{ClientID: client.ID, TaskName: "Collect brand assets", Responsible: "Worker", Deadline: "2026-09-05"}).Error)
	s.Require().NoError(s.env.db.Create(&models.ContentIdea{ClientID: client.ID, IdeaSource: "TikTok", Description: "Trend remix", Link: "https://example.com", Sound: "OriginalSound", Status: "Planned"}).Error)
	s.Require().NoError(s.env.db.Create(&models.Metric{ClientID: client.ID, Platform: "Instagram", PostDate: "2026-08-01", Views: 1200, Likes: 85, Comments: 10, Shares: 4}).Error)

	r := s.routerAs(s.worker)
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/client/%d", client.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Contains(body, "Acme Corp")
	s.Contains(body, "Collect brand assets")
	s.Contains(body, "Trend remix")
	s.Contains(body, "Instagram")
}

func (s *ClientHandlerTestSuite) TestClientProfileNotFound() {
	r := s.routerAs(s.worker)
	req := httptest.NewRequest(http.MethodGet, "/client/9999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ClientHandlerTestSuite) TestAddOnboardingTask() {
	client := s.env.createClient(s.T(), s.worker.ID, "Acme Corp")
	r := s.routerAs(s.worker)

	form := url.Values{}
	form.Set("task_name", "Collect brand assets")
	form.Set("responsible", "Worker")
	form.Set("deadline", "2026-09-05")

	w := s.post(r, fmt.Sprintf("/add_onboarding_task/%d", client.ID), form)

	s.Equal(http.StatusFound, w.Code)
	s.Equal(fmt.Sprintf("/client/%d", client.ID), w.Header().Get("Location"))

	var task models.OnboardingTask
	s.Require().NoError(s.env.db.First(&task).Error)
	s.Equal(client.ID, task.ClientID)

	var note models.Notification
	s.Require().NoError(s.env.db.Where("user_id = ?", s.manager.ID).First(&note).Error)
	s.Equal(fmt.Sprintf(`A new onboarding task "Collect brand assets" has been added for client ID %d`, client.ID), note.Message)
	s.Equal(models.NotificationOnboardingTaskAdded, note.Type)
}

func (s *ClientHandlerTestSuite) TestAddOnboardingTaskUnknownClient() {
	r := s.routerAs(s.worker)

	form := url.Values{}
	form.Set("task_name", "Collect brand assets")
	form.Set("responsible", "Worker")
	form.Set("deadline", "2026-09-05")

	w := s.post(r, "/add_onboarding_task/9999", form)

	s.Equal(http.StatusNotFound, w.Code)

	var count int64
	s.Require().NoError(s.env.db.Model(&models.OnboardingTask{}).Count(&count).Error)
	s.Zero(count)
}

func (s *ClientHandlerTestSuite) TestAddMetricAcceptsZeroCounts() {
	client := s.env.createClient(s.T(), s.worker.ID, "Acme Corp")
	r := s.routerAs(s.worker)

	form := url.Values{}
	form.Set("platform", "Instagram")
	form.Set("post_date", "2026-08-01")
	form.Set("views", "0")
	form.Set("likes", "0")
	form.Set("comments", "0")
	form.Set("shares", "0")

	w := s.post(r, fmt.Sprintf("/add_metric/%d", client.ID), form)

	s.Equal(http.StatusFound, w.Code)

	var metric models.Metric
	s.Require().NoError(s.env.db.First(&metric).Error)
	s.Equal("Instagram", metric.Platform)
	s.Zero(metric.Views)
}

func TestClientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
