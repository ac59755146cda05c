package utils_test

import (
	"testing"
	"time"

	"salescrm/config"
	"salescrm/models"
	"salescrm/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() models.User {
	return models.User{
		ID:       7,
		Username: "agent1",
		Email:    "agent1@example.com",
		Role:     models.UserRoleSALES_AGENT,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, utils.VerifyPassword("s3cret-pass", hash))
	assert.False(t, utils.VerifyPassword("wrong-pass", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	user := testUser()
	token, err := utils.GenerateToken(user, utils.TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := utils.ParseToken(token, utils.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
}

func TestParseToken_TypeMismatch(t *testing.T) {
	t.Parallel()

	refresh, err := utils.GenerateToken(testUser(), utils.TokenTypeRefresh, time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken(refresh, utils.TokenTypeAccess)
	assert.Error(t, err)

	// 不指定类型时两种令牌都接受
	_, err = utils.ParseToken(refresh, "")
	assert.NoError(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateToken(testUser(), utils.TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, utils.TokenTypeAccess)
	assert.Error(t, err)
}

func TestParseToken_Tampered(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateToken(testUser(), utils.TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken(token+"x", utils.TokenTypeAccess)
	assert.Error(t, err)

	_, err = utils.ParseToken("not-a-token", utils.TokenTypeAccess)
	assert.Error(t, err)
}

// 修改全局JWT配置，不能并行
func TestInitAuth_AppliesConfiguredKey(t *testing.T) {
	user := testUser()

	before, err := utils.GenerateAccessToken(user)
	require.NoError(t, err)

	// cleanup按LIFO执行：先恢复环境变量，再重载配置
	t.Cleanup(func() { utils.InitAuth(config.LoadConfig()) })
	t.Setenv("JWT_KEY", "rotated-secret")
	utils.InitAuth(config.LoadConfig())

	after, err := utils.GenerateAccessToken(user)
	require.NoError(t, err)
	claims, err := utils.ParseToken(after, utils.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.Username, claims.Username)

	// 轮换前签发的令牌用新密钥验签必须失败
	_, err = utils.ParseToken(before, utils.TokenTypeAccess)
	assert.Error(t, err)
}

func TestGenerateTokenPair(t *testing.T) {
	t.Parallel()

	pair, err := utils.GenerateTokenPair(testUser())
	require.NoError(t, err)

	access, err := utils.ParseToken(pair.Access, utils.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeAccess, access.TokenType)

	refresh, err := utils.ParseToken(pair.Refresh, utils.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeRefresh, refresh.TokenType)
}
