package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/grantdesk/internal/auth"
	"github.com/grantdesk/grantdesk/internal/types"
)

func GetCurrentIdentity(ctx *gin.Context) (auth.Claims, error) {
	value, exists := ctx.Get(types.ContextIdentityKey)

	if !exists {
		return auth.Claims{}, fmt.Errorf("no authenticated identity in context")
	}

	claims, ok := value.(auth.Claims)

	if !ok {
		return auth.Claims{}, fmt.Errorf("invalid identity type in context")
	}

	return claims, nil
}
