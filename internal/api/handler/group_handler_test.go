package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sitepulse/sitepulse/internal/api/dto/request"
	"github.com/sitepulse/sitepulse/internal/apperrors"
	mockservice "github.com/sitepulse/sitepulse/internal/mocks/service"
	"github.com/sitepulse/sitepulse/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestGroupHandler_CreateGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	groupReq := request.GroupRequest{Name: "production", Icon: "server", Color: "#00ff00"}
	groupModel := model.MonitorGroup{Name: "production", Icon: "server", Color: "#00ff00"}
	createdGroup := model.MonitorGroup{ID: 1, Name: "production", Icon: "server", Color: "#00ff00"}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockGroupService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Group Created",
			body: groupReq,
			setupMocks: func(mockService *mockservice.MockGroupService) {
				mockService.EXPECT().CreateGroup(gomock.Any(), groupModel).Return(createdGroup, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":1`,
		},
		{
			name:           "Error Missing name",
			body:           request.GroupRequest{Icon: "server"},
			setupMocks:     func(mockService *mockservice.MockGroupService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Name field is required"`,
		},
		{
			name: "Error Internal Server Error",
			body: groupReq,
			setupMocks: func(mockService *mockservice.MockGroupService) {
				mockService.EXPECT().CreateGroup(gomock.Any(), groupModel).
					Return(model.MonitorGroup{}, errors.New("unexpected db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockGroupService(ctrl)
			tc.setupMocks(mockService)

			handler := NewGroupHandler(NewLogger(zap.NewNop()), mockService)

			var reqBody io.Reader
			if bodyStr, ok := tc.body.(string); ok {
				reqBody = strings.NewReader(bodyStr)
			} else {
				jsonBody, _ := json.Marshal(tc.body)
				reqBody = bytes.NewReader(jsonBody)
			}

			w, c := setupTestContext(t, http.MethodPost, "/api/groups", reqBody)
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateGroup()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestGroupHandler_UpdateGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	groupReq := request.GroupRequest{Name: "staging"}

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockGroupService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Group Updated",
			setupMocks: func(mockService *mockservice.MockGroupService) {
				mockService.EXPECT().UpdateGroup(gomock.Any(), model.MonitorGroup{ID: 1, Name: "staging"}).
					Return(model.MonitorGroup{ID: 1, Name: "staging"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"staging"`,
		},
		{
			name: "Error Group Not Found",
			setupMocks: func(mockService *mockservice.MockGroupService) {
				mockService.EXPECT().UpdateGroup(gomock.Any(), model.MonitorGroup{ID: 1, Name: "staging"}).
					Return(model.MonitorGroup{}, apperrors.ErrGroupNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Group not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockGroupService(ctrl)
			tc.setupMocks(mockService)

			handler := NewGroupHandler(NewLogger(zap.NewNop()), mockService)

			jsonBody, _ := json.Marshal(groupReq)
			w, c := setupTestContext(t, http.MethodPut, "/api/groups/1", bytes.NewReader(jsonBody))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: "1"}}

			handler.UpdateGroup()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestGroupHandler_DeleteGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockGroupService(ctrl)
	mockService.EXPECT().DeleteGroup(gomock.Any(), 3).Return(apperrors.ErrGroupNotFound)

	handler := NewGroupHandler(NewLogger(zap.NewNop()), mockService)

	w, c := setupTestContext(t, http.MethodDelete, "/api/groups/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	handler.DeleteGroup()(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Group not found"`)
}
