package config_test

import (
	"os"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/go-homedir"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/kubev2v/filter-clauses/internal/config"
)

var _ = Describe("Configuration", func() {
	var fs afero.Fs

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		config.AppFs = fs
	})

	AfterEach(func() {
		config.AppFs = afero.NewOsFs()
	})

	It("should apply defaults", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.Server.ServerMode).To(Equal("dev"))
		Expect(cfg.Server.ShutdownTimeout).To(Equal(10 * time.Second))
		Expect(cfg.Storage.DatabasePath).To(Equal(":memory:"))
		Expect(cfg.Auth.Enabled).To(BeFalse())
		Expect(cfg.Auth.Issuer).To(Equal("filter-clauses"))
		Expect(cfg.LogLevel).To(Equal("info"))
	})

	It("should let options override defaults", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithLogLevel("debug"),
			config.WithAuth(config.Auth{Enabled: true, JWTFilePath: "/secret"}),
		)
		Expect(cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.Auth.Enabled).To(BeTrue())
		Expect(cfg.Server.HTTPPort).To(Equal(8000))

		copied := config.NewConfigurationWithOptions(cfg.ToOption())
		Expect(cmp.Diff(cfg, copied)).To(BeEmpty())
	})

	It("should expand home relative paths", func() {
		home, err := homedir.Dir()
		Expect(err).NotTo(HaveOccurred())

		cfg := config.NewConfigurationWithOptionsAndDefaults()
		cfg.Storage.DatabasePath = "~/clauses.duckdb"
		cfg.Auth.JWTFilePath = "/etc/secret"
		Expect(cfg.ExpandPaths()).To(Succeed())

		Expect(cfg.Storage.DatabasePath).To(Equal(home + "/clauses.duckdb"))
		Expect(cfg.Auth.JWTFilePath).To(Equal("/etc/secret"))
	})

	Context("LoadEnvFile", func() {
		AfterEach(func() {
			os.Unsetenv("CLAUSES_TEST_FROM_FILE")
			os.Unsetenv("CLAUSES_TEST_PRESET")
		})

		It("should export variables without overriding the environment", func() {
			Expect(afero.WriteFile(fs, "/app/.env", []byte("CLAUSES_TEST_FROM_FILE=file\nCLAUSES_TEST_PRESET=file\n"), 0o600)).To(Succeed())
			os.Setenv("CLAUSES_TEST_PRESET", "env")

			Expect(config.LoadEnvFile("/app/.env")).To(Succeed())
			Expect(os.Getenv("CLAUSES_TEST_FROM_FILE")).To(Equal("file"))
			Expect(os.Getenv("CLAUSES_TEST_PRESET")).To(Equal("env"))
		})

		It("should ignore a missing or empty path", func() {
			Expect(config.LoadEnvFile("")).To(Succeed())
			Expect(config.LoadEnvFile("/missing/.env")).To(Succeed())
		})
	})

	Context("ReadSecret", func() {
		It("should trim the secret", func() {
			Expect(afero.WriteFile(fs, "/secret", []byte("  s3cr3t\n"), 0o600)).To(Succeed())
			secret, err := config.ReadSecret("/secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(secret)).To(Equal("s3cr3t"))
		})

		It("should fail on empty or missing files", func() {
			Expect(afero.WriteFile(fs, "/empty", []byte("\n"), 0o600)).To(Succeed())
			_, err := config.ReadSecret("/empty")
			Expect(err).To(MatchError(ContainSubstring("is empty")))

			_, err = config.ReadSecret("/nope")
			Expect(err).To(HaveOccurred())
		})
	})
})
