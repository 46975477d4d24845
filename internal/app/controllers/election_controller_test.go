package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
)

type stubElectionService struct {
	createFn func(ctx context.Context, req *dto.CreateElectionRequest) (*models.Election, error)
	getAllFn func(ctx context.Context, studentID int64) ([]*dto.ElectionResponse, error)
	voteFn   func(ctx context.Context, electionID, candidateID, studentID int64) (*dto.ElectionResponse, error)
}

func (s *stubElectionService) Create(ctx context.Context, req *dto.CreateElectionRequest) (*models.Election, error) {
	return s.createFn(ctx, req)
}

func (s *stubElectionService) GetByID(ctx context.Context, id int64, studentID int64) (*dto.ElectionResponse, error) {
	return nil, apperrors.ErrElectionNotFound
}

func (s *stubElectionService) GetAll(ctx context.Context, studentID int64) ([]*dto.ElectionResponse, error) {
	return s.getAllFn(ctx, studentID)
}

func (s *stubElectionService) Vote(ctx context.Context, electionID, candidateID, studentID int64) (*dto.ElectionResponse, error) {
	return s.voteFn(ctx, electionID, candidateID, studentID)
}

func (s *stubElectionService) Delete(ctx context.Context, id int64) error {
	return nil
}

func newElectionRouter(stub *stubElectionService, userID int64, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewElectionController(stub)

	group := router.Group("/", fakeAuth(userID, role))
	group.POST("/elections", controller.Create)
	group.GET("/elections", controller.GetAll)
	group.POST("/elections/:id/vote", controller.Vote)
	return router
}

func TestElectionCreate_Success(t *testing.T) {
	stub := &stubElectionService{
		createFn: func(ctx context.Context, req *dto.CreateElectionRequest) (*models.Election, error) {
			return &models.Election{ID: 1, Title: req.Title, Level: req.Level, TotalVoters: 420}, nil
		},
	}
	router := newElectionRouter(stub, 99, models.RoleAdmin)

	recorder := postJSON(t, router, "/elections", dto.CreateElectionRequest{
		Title:       "Student Council 2025",
		Description: "Annual council election",
		Deadline:    time.Now().Add(72 * time.Hour),
		Level:       models.LevelCollege,
		Candidates:  []dto.CandidateRequest{{Name: "A. Candidate", Position: "President"}},
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"totalVoters":420`)
}

func TestElectionCreate_NoCandidatesRejected(t *testing.T) {
	router := newElectionRouter(&stubElectionService{}, 99, models.RoleAdmin)

	recorder := postJSON(t, router, "/elections", dto.CreateElectionRequest{
		Title:       "Student Council 2025",
		Description: "Annual council election",
		Deadline:    time.Now().Add(72 * time.Hour),
		Level:       models.LevelCollege,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestElectionGetAll_PassesCallerForStudents(t *testing.T) {
	var calledWith int64
	stub := &stubElectionService{
		getAllFn: func(ctx context.Context, studentID int64) ([]*dto.ElectionResponse, error) {
			calledWith = studentID
			return []*dto.ElectionResponse{}, nil
		},
	}
	router := newElectionRouter(stub, 7, models.RoleStudent)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/elections", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(7), calledWith)
}

func TestElectionGetAll_NonStudentHasNoVotingState(t *testing.T) {
	var calledWith int64 = -1
	stub := &stubElectionService{
		getAllFn: func(ctx context.Context, studentID int64) ([]*dto.ElectionResponse, error) {
			calledWith = studentID
			return []*dto.ElectionResponse{}, nil
		},
	}
	router := newElectionRouter(stub, 99, models.RoleAdmin)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/elections", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Zero(t, calledWith)
}

func TestElectionVote_Success(t *testing.T) {
	stub := &stubElectionService{
		voteFn: func(ctx context.Context, electionID, candidateID, studentID int64) (*dto.ElectionResponse, error) {
			assert.Equal(t, int64(4), electionID)
			assert.Equal(t, int64(12), candidateID)
			assert.Equal(t, int64(7), studentID)
			return &dto.ElectionResponse{
				Election: models.Election{ID: electionID, Voted: 1},
				HasVoted: true,
			}, nil
		},
	}
	router := newElectionRouter(stub, 7, models.RoleStudent)

	recorder := postJSON(t, router, "/elections/4/vote", dto.VoteRequest{CandidateID: 12})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"hasVoted":true`)
}

func TestElectionVote_UnknownCandidate(t *testing.T) {
	stub := &stubElectionService{
		voteFn: func(ctx context.Context, electionID, candidateID, studentID int64) (*dto.ElectionResponse, error) {
			return nil, apperrors.ErrCandidateNotFound
		},
	}
	router := newElectionRouter(stub, 7, models.RoleStudent)

	recorder := postJSON(t, router, "/elections/4/vote", dto.VoteRequest{CandidateID: 999})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestElectionVote_RepeatBallot(t *testing.T) {
	stub := &stubElectionService{
		voteFn: func(ctx context.Context, electionID, candidateID, studentID int64) (*dto.ElectionResponse, error) {
			return nil, apperrors.ErrAlreadyVoted
		},
	}
	router := newElectionRouter(stub, 7, models.RoleStudent)

	recorder := postJSON(t, router, "/elections/4/vote", dto.VoteRequest{CandidateID: 12})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestElectionVote_ClosedElection(t *testing.T) {
	stub := &stubElectionService{
		voteFn: func(ctx context.Context, electionID, candidateID, studentID int64) (*dto.ElectionResponse, error) {
			return nil, apperrors.ErrElectionClosed
		},
	}
	router := newElectionRouter(stub, 7, models.RoleStudent)

	recorder := postJSON(t, router, "/elections/4/vote", dto.VoteRequest{CandidateID: 12})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
