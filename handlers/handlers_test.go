package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"techforum/config"
	"techforum/handlers"
	"techforum/helper"
	"techforum/middleware"
	"techforum/models"
	"techforum/repositories"
	"techforum/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "Sup3rPass!"

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type pageEnvelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	NbHits     int             `json:"nbHits"`
	TotalPages int             `json:"totalPages"`
	HasMore    bool            `json:"hasMore"`
}

type HandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	cookies []*http.Cookie
	userID  uint
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(config.Migrate(db))
	s.db = db

	s.setupRouter()
	s.cookies = nil
	s.signUpAndSignIn("test@example.com")
}

func (s *HandlerTestSuite) setupRouter() {
	userRepo := repositories.NewUserRepository(s.db)
	questionRepo := repositories.NewQuestionRepository(s.db)
	answerRepo := repositories.NewAnswerRepository(s.db)
	blogRepo := repositories.NewBlogRepository(s.db)
	documentRepo := repositories.NewDocumentRepository(s.db)
	bookmarkRepo := repositories.NewBookmarkRepository(s.db)

	mailService := services.NewMailService()
	authService := services.NewAuthService(userRepo, mailService)
	questionService := services.NewQuestionService(questionRepo)
	answerService := services.NewAnswerService(answerRepo)
	blogService := services.NewBlogService(blogRepo)
	documentService := services.NewDocumentService(documentRepo)
	bookmarkService := services.NewBookmarkService(bookmarkRepo)

	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	questionHandler := handlers.NewQuestionHandler(questionService, httpHelper)
	answerHandler := handlers.NewAnswerHandler(answerService, httpHelper)
	blogHandler := handlers.NewBlogHandler(blogService, httpHelper)
	documentHandler := handlers.NewDocumentHandler(documentService, httpHelper)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService, httpHelper)
	searchHandler := handlers.NewSearchHandler(questionService, httpHelper)

	router := gin.New()

	store := cookie.NewStore([]byte("test-session-secret"))
	router.Use(sessions.Sessions("techforum_session", store))

	router.POST("/signup", authHandler.SignUp)
	router.POST("/signin", authHandler.SignIn)
	router.POST("/signout", authHandler.SignOut)
	router.POST("/forgotpassword", authHandler.ForgotPassword)
	router.PATCH("/resetpassword", authHandler.ResetPassword)
	router.GET("/userrole/:id", authHandler.UserRole)

	router.GET("/question", questionHandler.GetAll)
	router.GET("/quepagination", questionHandler.GetPage)
	router.GET("/question/:id", questionHandler.GetByID)
	router.GET("/answer/:questionId", answerHandler.GetByQuestion)
	router.GET("/blogtitle", blogHandler.GetTitles)
	router.GET("/search", searchHandler.Search)

	protected := router.Group("/")
	protected.Use(middleware.Auth())
	{
		protected.POST("/question", questionHandler.Create)
		protected.GET("/questionbyuser/:userId", questionHandler.GetByUser)
		protected.PATCH("/question/:id", questionHandler.Update)
		protected.DELETE("/question/:id", questionHandler.Delete)

		protected.POST("/answer", answerHandler.Create)
		protected.PATCH("/answer/:id", answerHandler.Update)
		protected.DELETE("/answer/:id", answerHandler.Delete)
		protected.POST("/upvote/:id", answerHandler.Upvote)
		protected.POST("/downvote/:id", answerHandler.Downvote)
		protected.GET("/upvote/:id", answerHandler.CheckUpvote)
		protected.GET("/downvote/:id", answerHandler.CheckDownvote)

		protected.GET("/blog", blogHandler.GetPage)
		protected.GET("/blog/:id", blogHandler.GetByID)
		protected.GET("/blogbyuser/:userId", blogHandler.GetByUser)
		protected.POST("/blog", blogHandler.Create)
		protected.PATCH("/blog/:id", blogHandler.Update)
		protected.DELETE("/blog/:id", blogHandler.Delete)

		protected.GET("/document", documentHandler.GetPage)
		protected.GET("/document/:id", documentHandler.GetByID)
		protected.GET("/docbyuser/:userId", documentHandler.GetByUser)
		protected.POST("/document", documentHandler.Create)
		protected.PATCH("/document/:id", documentHandler.Update)
		protected.DELETE("/document/:id", documentHandler.Delete)

		protected.POST("/bookmark", bookmarkHandler.Toggle)
		protected.GET("/bookmark/:userId", bookmarkHandler.GetByUser)
	}

	s.router = router
}

// request sends a JSON request carrying every cookie collected so far.
func (s *HandlerTestSuite) request(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range s.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// anonymous sends a request without any cookies.
func (s *HandlerTestSuite) anonymous(method, path string, payload interface{}) *httptest.ResponseRecorder {
	saved := s.cookies
	s.cookies = nil
	w := s.request(method, path, payload)
	s.cookies = saved
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) envelope {
	var resp envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *HandlerTestSuite) signUpAndSignIn(email string) {
	w := s.request(http.MethodPost, "/signup", models.SignUpRequest{
		FirstName:       "Test",
		LastName:        "User",
		Email:           email,
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.request(http.MethodPost, "/signin", models.SignInRequest{
		Email:    email,
		Password: testPassword,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var tokenCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			tokenCookie = c
		}
	}
	s.Require().NotNil(tokenCookie, "signin must set the token cookie")
	s.Require().NotEmpty(tokenCookie.Value)
	s.cookies = append(s.cookies, tokenCookie)

	var data struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
		Name string `json:"name"`
	}
	resp := s.decode(w)
	s.Require().NoError(json.Unmarshal(resp.Data, &data))
	s.Equal("Test User", data.Name)
	s.Equal(models.RoleUser, data.Role)
	s.userID = data.ID
}

func (s *HandlerTestSuite) createQuestion(text string) uint {
	w := s.request(http.MethodPost, "/question", models.CreateQuestionRequest{
		Question:    text,
		Description: "details about " + text,
		Tags:        []string{"go"},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var question models.Question
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &question))
	return question.ID
}

func (s *HandlerTestSuite) createAnswer(questionID uint) uint {
	w := s.request(http.MethodPost, "/answer", models.CreateAnswerRequest{
		QuestionID: questionID,
		Answer:     "an answer",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var answer models.Answer
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &answer))
	return answer.ID
}

func (s *HandlerTestSuite) TestSignInRejectsWrongPassword() {
	w := s.anonymous(http.MethodPost, "/signin", models.SignInRequest{
		Email:    "test@example.com",
		Password: "WrongPass1!",
	})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Incorrect Email or password")
}

func (s *HandlerTestSuite) TestSignInRejectsUnknownEmail() {
	w := s.anonymous(http.MethodPost, "/signin", models.SignInRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Incorrect Email or password")
}

func (s *HandlerTestSuite) TestSignUpRejectsWeakPassword() {
	w := s.anonymous(http.MethodPost, "/signup", models.SignUpRequest{
		FirstName:       "Weak",
		LastName:        "Pass",
		Email:           "weak@example.com",
		Password:        "alllowercase1!",
		ConfirmPassword: "alllowercase1!",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Validation error")
}

func (s *HandlerTestSuite) TestSignUpRejectsDuplicateEmail() {
	w := s.anonymous(http.MethodPost, "/signup", models.SignUpRequest{
		FirstName:       "Other",
		LastName:        "Person",
		Email:           "test@example.com",
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Email already exists")
}

func (s *HandlerTestSuite) TestProtectedRouteNeedsCookie() {
	w := s.anonymous(http.MethodPost, "/question", models.CreateQuestionRequest{
		Question:    "am I allowed?",
		Description: "no cookie attached",
		Tags:        []string{"auth"},
	})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Need to Sign In")
}

func (s *HandlerTestSuite) TestSignOutExpiresCookie() {
	w := s.request(http.MethodPost, "/signout", nil)
	s.Equal(http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			s.Empty(c.Value)
			s.Less(c.MaxAge, 0)
		}
	}
}

func (s *HandlerTestSuite) TestUserRole() {
	w := s.anonymous(http.MethodGet, fmt.Sprintf("/userrole/%d", s.userID), nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), models.RoleUser)

	w = s.anonymous(http.MethodGet, "/userrole/abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.anonymous(http.MethodGet, "/userrole/9999", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestQuestionLifecycle() {
	id := s.createQuestion("How does GC work?")

	w := s.anonymous(http.MethodGet, fmt.Sprintf("/question/%d", id), nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "How does GC work?")

	newText := "How does the garbage collector work?"
	w = s.request(http.MethodPatch, fmt.Sprintf("/question/%d", id), models.UpdateQuestionRequest{
		Question: &newText,
	})
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), newText)

	w = s.request(http.MethodDelete, fmt.Sprintf("/question/%d", id), nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Question deleted successfully")

	w = s.request(http.MethodDelete, fmt.Sprintf("/question/%d", id), nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Data Not Found")
}

func (s *HandlerTestSuite) TestQuestionInvalidIDRejectedBeforeLookup() {
	w := s.anonymous(http.MethodGet, "/question/64e0b4f2a9c1", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Invalid question id")
}

func (s *HandlerTestSuite) TestVoteToggleOverHTTP() {
	questionID := s.createQuestion("What is a nil map?")
	answerID := s.createAnswer(questionID)

	w := s.request(http.MethodPost, fmt.Sprintf("/upvote/%d", answerID), nil)
	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), "Upvoted Successfully")

	w = s.request(http.MethodGet, fmt.Sprintf("/upvote/%d", answerID), nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"voted":true`)

	w = s.request(http.MethodPost, fmt.Sprintf("/upvote/%d", answerID), nil)
	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), "Upvote removed")

	w = s.request(http.MethodGet, fmt.Sprintf("/upvote/%d", answerID), nil)
	s.Contains(w.Body.String(), `"voted":false`)

	// A downvote after an upvote replaces it instead of stacking.
	w = s.request(http.MethodPost, fmt.Sprintf("/upvote/%d", answerID), nil)
	s.Contains(w.Body.String(), "Upvoted Successfully")
	w = s.request(http.MethodPost, fmt.Sprintf("/downvote/%d", answerID), nil)
	s.Contains(w.Body.String(), "Downvoted Successfully")

	w = s.request(http.MethodGet, fmt.Sprintf("/upvote/%d", answerID), nil)
	s.Contains(w.Body.String(), `"voted":false`)
	w = s.request(http.MethodGet, fmt.Sprintf("/downvote/%d", answerID), nil)
	s.Contains(w.Body.String(), `"voted":true`)
}

func (s *HandlerTestSuite) TestVoteOnMissingAnswer() {
	w := s.request(http.MethodPost, "/upvote/9999", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Answer not found")
}

func (s *HandlerTestSuite) TestAnswerDeleteTwice() {
	questionID := s.createQuestion("What does defer do?")
	answerID := s.createAnswer(questionID)

	w := s.request(http.MethodDelete, fmt.Sprintf("/answer/%d", answerID), nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, fmt.Sprintf("/answer/%d", answerID), nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "already deleted")
}

func (s *HandlerTestSuite) TestBookmarkToggleOverHTTP() {
	questionID := s.createQuestion("What is iota?")

	w := s.request(http.MethodPost, "/bookmark", models.BookmarkRequest{QuestionID: questionID})
	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), "Added bookmark")

	w = s.request(http.MethodGet, fmt.Sprintf("/bookmark/%d", s.userID), nil)
	s.Equal(http.StatusOK, w.Code)
	var bookmarks []models.Bookmark
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &bookmarks))
	s.Require().Len(bookmarks, 1)
	s.Equal(questionID, bookmarks[0].QuestionID)
	s.Equal("What is iota?", bookmarks[0].Question.Question)

	w = s.request(http.MethodPost, "/bookmark", models.BookmarkRequest{QuestionID: questionID})
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Bookmark removed")
}

func (s *HandlerTestSuite) TestBookmarkMissingQuestion() {
	w := s.request(http.MethodPost, "/bookmark", models.BookmarkRequest{QuestionID: 9999})
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Question not found")
}

func (s *HandlerTestSuite) TestBlogPaginationEnvelope() {
	for i := 0; i < 20; i++ {
		blog := models.Blog{
			UserID:     s.userID,
			Title:      fmt.Sprintf("post %02d", i),
			Content:    "body",
			IsApproved: true,
		}
		s.Require().NoError(s.db.Create(&blog).Error)
	}

	w := s.request(http.MethodGet, "/blog?pageNumber=1&pageSize=8", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var page pageEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	s.Equal(8, page.NbHits)
	s.Equal(3, page.TotalPages)
	s.True(page.HasMore)

	w = s.request(http.MethodGet, "/blog?pageNumber=3&pageSize=8", nil)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	s.Equal(4, page.NbHits)
	s.Equal(3, page.TotalPages)
	s.False(page.HasMore)
}

func (s *HandlerTestSuite) TestQuestionPaginationDefaults() {
	for i := 0; i < 10; i++ {
		s.createQuestion(fmt.Sprintf("question number %d", i))
	}

	// No query parameters, defaults to page 1 with 8 entries.
	w := s.anonymous(http.MethodGet, "/quepagination", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var page pageEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	s.Equal(8, page.NbHits)
	s.Equal(2, page.TotalPages)
	s.True(page.HasMore)
}

func (s *HandlerTestSuite) TestSearch() {
	s.createQuestion("Anything about Channels")

	w := s.anonymous(http.MethodGet, "/search", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Enter a tag")

	w = s.anonymous(http.MethodGet, "/search?tags=channels", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Anything about Channels")

	// No match is reported as not found rather than an empty list.
	w = s.anonymous(http.MethodGet, "/search?tags=zzzmissing", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Data Not Found")
}

func (s *HandlerTestSuite) TestBlogTitlesArePublic() {
	s.Require().NoError(s.db.Create(&models.Blog{
		UserID:     s.userID,
		Title:      "A public title",
		Content:    "body",
		IsApproved: true,
	}).Error)
	s.Require().NoError(s.db.Create(&models.Blog{
		UserID:  s.userID,
		Title:   "A pending title",
		Content: "body",
	}).Error)

	w := s.anonymous(http.MethodGet, "/blogtitle", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "A public title")
	s.NotContains(w.Body.String(), "A pending title")
}

func (s *HandlerTestSuite) TestResetPasswordFlow() {
	w := s.anonymous(http.MethodPost, "/forgotpassword", models.ForgotPasswordRequest{
		Email: "test@example.com",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	// The session cookie set here is the only link to the reset request.
	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "techforum_session" {
			sessionCookie = c
		}
	}
	s.Require().NotNil(sessionCookie)

	reset := func(newPassword, confirm string, withSession bool) *httptest.ResponseRecorder {
		raw, err := json.Marshal(models.ResetPasswordRequest{
			NewPassword:     newPassword,
			ConfirmPassword: confirm,
		})
		s.Require().NoError(err)
		req := httptest.NewRequest(http.MethodPatch, "/resetpassword", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		if withSession {
			req.AddCookie(sessionCookie)
		}
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec
	}

	s.Equal(http.StatusNotFound, reset("NewPass1!", "NewPass1!", false).Code)
	s.Equal(http.StatusBadRequest, reset("a1!", "a1!", true).Code)
	s.Equal(http.StatusUnauthorized, reset("NewPass1!", "Different1!", true).Code)

	ok := reset("NewPass1!", "NewPass1!", true)
	s.Require().Equal(http.StatusCreated, ok.Code, ok.Body.String())

	// Old password no longer works, new one does.
	w = s.anonymous(http.MethodPost, "/signin", models.SignInRequest{
		Email:    "test@example.com",
		Password: testPassword,
	})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.anonymous(http.MethodPost, "/signin", models.SignInRequest{
		Email:    "test@example.com",
		Password: "NewPass1!",
	})
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestForgotPasswordUnknownEmail() {
	w := s.anonymous(http.MethodPost, "/forgotpassword", models.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "User not found")
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
