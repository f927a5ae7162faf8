package tasks

import (
	"context"

	"github.com/goliatone/go-tasks/middleware/tokenware"
)

// tokenValidatorAdapter bridges the package TokenService to the
// middleware's mirrored validator interface.
func tokenValidatorAdapter(tokens TokenService) tokenware.TokenValidator {
	return tokenware.TokenValidatorFunc(func(raw string) (tokenware.AuthClaims, error) {
		claims, err := tokens.Validate(raw)
		if err != nil {
			return nil, err
		}
		return claims, nil
	})
}

// ContextEnricherAdapter stores validated claims in the standard
// context so handlers can recover them with GetClaims.
func ContextEnricherAdapter(ctx context.Context, claims tokenware.AuthClaims) context.Context {
	authClaims, ok := claims.(AuthClaims)
	if !ok {
		return ctx
	}
	return WithClaimsContext(ctx, authClaims)
}
