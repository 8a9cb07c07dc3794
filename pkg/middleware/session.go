package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narasux/perovskite/pkg/storage"
	"github.com/narasux/perovskite/pkg/utils/ginx"
)

// SessionCookieName 会话 Cookie 名称
const SessionCookieName = "perovskite_session"

// 会话对象在 gin.Context 中的 key
const sessionKey = "session"

// 会话有效期（秒），与服务端淘汰策略无关
const sessionCookieMaxAge = 7 * 24 * 3600

// Session 为每个浏览器绑定一份表单会话
func Session(store *storage.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, _ := c.Cookie(SessionCookieName)

		sess := store.GetOrCreate(sessionID)
		if sess.ID != sessionID {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, sess.ID, sessionCookieMaxAge, "/", "", false, true)
		}
		ginx.SetSessionID(c, sess.ID)
		c.Set(sessionKey, sess)

		c.Next()
	}
}

// GetSession 获取当前请求绑定的会话，未经过 Session 中间件时返回 nil
func GetSession(c *gin.Context) *storage.Session {
	value, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := value.(*storage.Session)
	return sess
}
