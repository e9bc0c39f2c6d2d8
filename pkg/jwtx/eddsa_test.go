package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/clubhouse/pkg/cryptox"
	"github.com/aussiebroadwan/clubhouse/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "campus-idp"

func newSigner(t *testing.T, kid string) *jwtx.Signer {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSigner(kid, pemKey)
	require.NoError(t, err)
	return signer
}

func TestSignAndVerify(t *testing.T) {
	signer := newSigner(t, "dev-1")
	require.Equal(t, "dev-1", signer.KID())

	now := time.Now().UTC()
	claims := jwtx.NewIdentityClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "asha@cmrit.ac.in", "Asha",
		exampleIssuer, []string{"clubhouse"}, 5*time.Minute, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())
	require.NoError(t, keys.AddSigner(signer))
	require.True(t, keys.IsReady())

	jwks := keys.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)

	v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: exampleIssuer, Audience: []string{"clubhouse"}})
	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, "asha@cmrit.ac.in", got.Email)
	require.Equal(t, "Asha", got.Name)
	require.NotEmpty(t, got.ID)
}

func TestVerifyRejects(t *testing.T) {
	signer := newSigner(t, "dev-1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sign := func(c jwtx.Claims) string {
		tok, err := signer.Sign(c)
		require.NoError(t, err)
		return tok
	}
	valid := jwtx.NewIdentityClaims("id-1", "", "", exampleIssuer, []string{"clubhouse"}, time.Minute, now)

	t.Run("wrong issuer", func(t *testing.T) {
		v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: "other", Now: func() time.Time { return now }})
		_, err := v.Verify(sign(valid))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Audience: []string{"billing"}, Now: func() time.Time { return now }})
		_, err := v.Verify(sign(valid))
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Now: func() time.Time { return now.Add(time.Hour) }})
		_, err := v.Verify(sign(valid))
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown key", func(t *testing.T) {
		other := newSigner(t, "rogue")
		tok, err := other.Sign(valid)
		require.NoError(t, err)
		v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Now: func() time.Time { return now }})
		_, err = v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := valid
		c.Subject = ""
		v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Now: func() time.Time { return now }})
		_, err := v.Verify(sign(c))
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("garbage", func(t *testing.T) {
		v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{})
		_, err := v.Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestResetFromJWKS(t *testing.T) {
	a := newSigner(t, "a")
	b := newSigner(t, "b")

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(a))

	n, err := keys.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{
		b.PublicJWK(),
		{Kty: "RSA", Kid: "legacy"},
	}})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = keys.Get("a")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
	_, err = keys.Get("b")
	require.NoError(t, err)

	_, err = keys.ResetFromJWKS(jwtx.JWKS{})
	require.Error(t, err)
	_, err = keys.Get("b")
	require.NoError(t, err, "failed reset keeps the previous keys")
}

func TestJWKPEM(t *testing.T) {
	signer := newSigner(t, "a")
	p, err := signer.PublicJWK().PEM()
	require.NoError(t, err)
	require.Contains(t, p, "-----BEGIN PUBLIC KEY-----")

	_, err = jwtx.JWK{Kty: "EC"}.PEM()
	require.Error(t, err)
}
