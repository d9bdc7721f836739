package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, SourceLocal, cfg.ResumeSource)
	require.Equal(t, "resume.json", cfg.ResumeKey)
	require.Equal(t, "./data", cfg.LocalDataDir)
	require.Equal(t, []string{"*"}, cfg.CORSAllowOrigin)
	require.True(t, cfg.AccordionExclusive)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("RESUME_SOURCE", "HTTPS")
	t.Setenv("RESUME_URL", "https://cdn.example.com/site")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("ACCORDION_EXCLUSIVE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, SourceHTTP, cfg.ResumeSource)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowOrigin)
	require.False(t, cfg.AccordionExclusive)
	require.NoError(t, cfg.Validate())
}

func TestValidateSourceRequirements(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "local", cfg: Config{ResumeSource: SourceLocal}},
		{name: "http without url", cfg: Config{ResumeSource: SourceHTTP}, wantErr: true},
		{name: "http with url", cfg: Config{ResumeSource: SourceHTTP, ResumeURL: "https://example.com"}},
		{name: "s3 without bucket", cfg: Config{ResumeSource: SourceS3}, wantErr: true},
		{name: "s3 with bucket", cfg: Config{ResumeSource: SourceS3, S3Bucket: "resumes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNormalizeSourceType(t *testing.T) {
	require.Equal(t, SourceS3, normalizeSourceType(" S3 "))
	require.Equal(t, SourceHTTP, normalizeSourceType("url"))
	require.Equal(t, SourceLocal, normalizeSourceType("ftp"))
}
