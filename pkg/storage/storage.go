package storage

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/narasux/perovskite/pkg/envs"
	"github.com/narasux/perovskite/pkg/form"
	"github.com/narasux/perovskite/pkg/presenter"
	"github.com/narasux/perovskite/pkg/utils/uuid"
)

// Sessions 全局会话存储，由 InitSessionStore 初始化
var Sessions *SessionStore

var initOnce sync.Once

// InitSessionStore 初始化会话存储
func InitSessionStore() {
	if Sessions != nil {
		return
	}
	initOnce.Do(func() {
		var err error
		if Sessions, err = NewSessionStore(envs.SessionCacheSize); err != nil {
			panic(err)
		}
	})
}

// Session 浏览器会话：一份组成表单 + 结果区域状态
type Session struct {
	ID   string
	Form *form.Form
	View *presenter.State
}

// SessionStore 会话存储，超出容量时淘汰最久未使用的会话
type SessionStore struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *Session]
}

// NewSessionStore ...
func NewSessionStore(size int) (*SessionStore, error) {
	cache, err := lru.New[string, *Session](size)
	if err != nil {
		return nil, errors.Wrapf(err, "new session cache with size %d", size)
	}
	return &SessionStore{cache: cache}, nil
}

// GetOrCreate 获取会话，不存在（或已被淘汰）时创建新会话，新会话的表单已完成初始化
func (s *SessionStore) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.cache.Get(id); ok {
		return sess
	}

	sess := &Session{ID: uuid.GenUUID4(), Form: form.New(), View: &presenter.State{}}
	sess.Form.Init()
	s.cache.Add(sess.ID, sess)
	return sess
}

// Len 当前保留的会话数量
func (s *SessionStore) Len() int {
	return s.cache.Len()
}
