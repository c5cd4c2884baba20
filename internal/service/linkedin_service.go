package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/David-iadg/consult-ia/internal/linkedin"
	"github.com/David-iadg/consult-ia/internal/logger"
	"github.com/David-iadg/consult-ia/internal/models"

	"github.com/google/uuid"
)

// LinkedInClient LinkedIn API 能力
type LinkedInClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	Profile(ctx context.Context, accessToken string) (*linkedin.Profile, error)
	Share(ctx context.Context, accessToken string, input linkedin.ShareInput) (map[string]interface{}, error)
}

// LinkedInConnectionStore 按管理员 ID 保存授权状态
type LinkedInConnectionStore interface {
	// Get 不存在时返回 (nil, nil)
	Get(ctx context.Context, userID uint) (*models.LinkedInConnection, error)
	Save(ctx context.Context, userID uint, conn models.LinkedInConnection) error
}

// LinkedInStatus 连接状态查询结果
type LinkedInStatus struct {
	Connected bool   `json:"connected"`
	State     string `json:"state"`
}

// LinkedInService 文章分享到 LinkedIn 的授权与发布流程
//
// 状态流转：not_connected → pending_callback → connected → invalid，
// invalid 或 not_connected 可重新发起授权。
type LinkedInService struct {
	client LinkedInClient
	store  LinkedInConnectionStore
	now    func() time.Time
}

// NewLinkedInService 创建服务，client 为空表示未配置集成
func NewLinkedInService(client LinkedInClient, store LinkedInConnectionStore) *LinkedInService {
	if store == nil {
		store = NewMemoryLinkedInConnectionStore()
	}
	return &LinkedInService{client: client, store: store, now: time.Now}
}

// Configured 是否配置了 LinkedIn 应用
func (s *LinkedInService) Configured() bool {
	return s != nil && s.client != nil
}

// BeginAuth 生成防伪 state 与授权地址，调用方负责把 state 写入会话
func (s *LinkedInService) BeginAuth(ctx context.Context, userID uint) (authURL string, state string, err error) {
	if !s.Configured() {
		return "", "", ErrLinkedInNotConfigured
	}
	state = uuid.NewString()

	conn, err := s.store.Get(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if conn == nil || conn.State != models.LinkedInStateConnected {
		if err := s.save(ctx, userID, models.LinkedInStatePendingCallback, ""); err != nil {
			return "", "", err
		}
	}
	return s.client.AuthCodeURL(state), state, nil
}

// CompleteAuth 校验 state 后用授权码换取令牌并保存
func (s *LinkedInService) CompleteAuth(ctx context.Context, userID uint, expectedState, state, code string) error {
	if !s.Configured() {
		return ErrLinkedInNotConfigured
	}
	if expectedState == "" || subtle.ConstantTimeCompare([]byte(expectedState), []byte(state)) != 1 {
		return ErrLinkedInStateMismatch
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrLinkedInCodeMissing
	}

	token, err := s.client.Exchange(ctx, code)
	if err != nil {
		logger.Errorw("linkedin_token_exchange_failed", "user_id", userID, "error", err)
		return err
	}
	if err := s.save(ctx, userID, models.LinkedInStateConnected, token); err != nil {
		return err
	}
	logger.Infow("linkedin_connected", "user_id", userID)
	return nil
}

// Status 通过资料接口验证令牌，任何失败都视为未连接
func (s *LinkedInService) Status(ctx context.Context, userID uint) (*LinkedInStatus, error) {
	conn, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return &LinkedInStatus{State: models.LinkedInStateNotConnected}, nil
	}
	if !conn.HasToken() || !s.Configured() {
		return &LinkedInStatus{State: conn.State}, nil
	}

	if _, err := s.client.Profile(ctx, conn.AccessToken); err != nil {
		logger.Warnw("linkedin_token_verify_failed", "user_id", userID, "error", err)
		if errors.Is(err, linkedin.ErrUnauthorized) {
			if saveErr := s.save(ctx, userID, models.LinkedInStateInvalid, conn.AccessToken); saveErr != nil {
				return nil, saveErr
			}
		}
		return &LinkedInStatus{State: models.LinkedInStateInvalid}, nil
	}
	if conn.State != models.LinkedInStateConnected {
		if err := s.save(ctx, userID, models.LinkedInStateConnected, conn.AccessToken); err != nil {
			return nil, err
		}
	}
	return &LinkedInStatus{Connected: true, State: models.LinkedInStateConnected}, nil
}

// Share 以管理员身份发布文章链接
func (s *LinkedInService) Share(ctx context.Context, userID uint, input linkedin.ShareInput) (map[string]interface{}, error) {
	if !s.Configured() {
		return nil, ErrLinkedInNotConfigured
	}
	conn, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !conn.HasToken() {
		return nil, ErrLinkedInNotConnected
	}

	result, err := s.client.Share(ctx, conn.AccessToken, input)
	if err != nil {
		logger.Errorw("linkedin_share_failed", "user_id", userID, "error", err)
		if errors.Is(err, linkedin.ErrUnauthorized) {
			if saveErr := s.save(ctx, userID, models.LinkedInStateInvalid, conn.AccessToken); saveErr != nil {
				logger.Warnw("linkedin_state_save_failed", "user_id", userID, "error", saveErr)
			}
			return nil, ErrLinkedInTokenInvalid
		}
		return nil, err
	}
	return result, nil
}

func (s *LinkedInService) save(ctx context.Context, userID uint, state, token string) error {
	return s.store.Save(ctx, userID, models.LinkedInConnection{
		State:       state,
		AccessToken: token,
		UpdatedAt:   s.now(),
	})
}

// MemoryLinkedInConnectionStore 进程内授权状态存储
type MemoryLinkedInConnectionStore struct {
	mu    sync.RWMutex
	items map[uint]models.LinkedInConnection
}

// NewMemoryLinkedInConnectionStore 创建内存存储
func NewMemoryLinkedInConnectionStore() *MemoryLinkedInConnectionStore {
	return &MemoryLinkedInConnectionStore{items: map[uint]models.LinkedInConnection{}}
}

func (m *MemoryLinkedInConnectionStore) Get(_ context.Context, userID uint) (*models.LinkedInConnection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conn, ok := m.items[userID]
	if !ok {
		return nil, nil
	}
	return &conn, nil
}

func (m *MemoryLinkedInConnectionStore) Save(_ context.Context, userID uint, conn models.LinkedInConnection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[userID] = conn
	return nil
}
