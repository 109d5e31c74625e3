package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/pkg/jwt"
	"github.com/Sylvio143/G-stagiaire/pkg/redis"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxCompteDocumentID = "compte_document_id"
	CtxTypeCompte       = "type_compte"
	CtxEntityDocumentID = "entity_document_id"
)

// JWTAuth validates the Authorization: Bearer <token> header and injects the
// account identity into the context. A nil rdb skips the blacklist check.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "en-tête d'authentification manquant")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "en-tête d'authentification invalide")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalide ou expiré")
			c.Abort()
			return
		}

		if claims.TokenType != jwt.TokenAccess {
			response.Unauthorized(c, 10002, "type de token invalide")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "token révoqué")
				c.Abort()
				return
			}
		}

		c.Set(CtxCompteDocumentID, claims.CompteDocumentID)
		c.Set(CtxTypeCompte, claims.TypeCompte)
		c.Set(CtxEntityDocumentID, claims.EntityDocumentID)

		c.Next()
	}
}

// RoleAuth allows only the listed account types through.
func RoleAuth(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		typeCompte, exists := c.Get(CtxTypeCompte)
		if !exists {
			response.Unauthorized(c, 10002, "non authentifié")
			c.Abort()
			return
		}

		current := typeCompte.(string)
		for _, t := range allowedTypes {
			if current == t {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "accès refusé")
		c.Abort()
	}
}
