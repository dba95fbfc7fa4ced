package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/mskgo/internal/config"
)

func setenv(key, value string) {
	old, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func unsetenv(key string) {
	old, had := os.LookupEnv(key)
	Expect(os.Unsetenv(key)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(key, old)
		}
	})
}

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		config.ResetConfig()
		tempDir = GinkgoT().TempDir()
	})

	AfterEach(func() {
		config.ResetConfig()
	})

	Describe("DefaultConfig", func() {
		It("should return valid default configuration", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Output.Format).To(Equal("table"))
			Expect(cfg.Client.MaxRetries).To(Equal(3))
			Expect(cfg.Wait.PollInterval).To(Equal(30 * time.Second))
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Describe("LoadConfig", func() {
		Context("when the config file does not exist", func() {
			It("should fail for an explicit path", func() {
				_, err := config.LoadConfig(filepath.Join(tempDir, "nonexistent.yaml"))
				Expect(err).To(MatchError(ContainSubstring("config file does not exist")))
			})
		})

		Context("when the config file exists", func() {
			It("should load configuration from file", func() {
				configPath := filepath.Join(tempDir, "mskctl.yaml")
				configContent := `
aws:
  region: eu-west-1
  profile: staging
  endpoint: http://localhost:4566
client:
  timeout: 5s
  maxRetries: -1
  rateLimit: 2.5
wait:
  pollInterval: 10s
  timeout: 45m
output:
  format: yaml
  logLevel: debug
`
				Expect(os.WriteFile(configPath, []byte(configContent), 0644)).To(Succeed())

				cfg, err := config.LoadConfig(configPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("eu-west-1"))
				Expect(cfg.AWS.Profile).To(Equal("staging"))
				Expect(cfg.AWS.Endpoint).To(Equal("http://localhost:4566"))
				Expect(cfg.Client.Timeout).To(Equal(5 * time.Second))
				Expect(cfg.Client.MaxRetries).To(Equal(-1))
				Expect(cfg.Client.RateLimit).To(Equal(2.5))
				Expect(cfg.Wait.PollInterval).To(Equal(10 * time.Second))
				Expect(cfg.Wait.Timeout).To(Equal(45 * time.Minute))
				Expect(cfg.Output.Format).To(Equal("yaml"))
				Expect(cfg.Output.LogLevel).To(Equal("debug"))
				Expect(cfg.Output.LogFormat).To(Equal("text"))
				Expect(config.ConfigFileUsed()).To(Equal(configPath))
			})

			It("should reject malformed YAML", func() {
				configPath := filepath.Join(tempDir, "broken.yaml")
				Expect(os.WriteFile(configPath, []byte("aws: [unterminated"), 0644)).To(Succeed())

				_, err := config.LoadConfig(configPath)
				Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
			})
		})

		Context("with environment variables", func() {
			It("should prefer MSKCTL_ variables over defaults", func() {
				setenv("MSKCTL_OUTPUT_FORMAT", "json")
				setenv("MSKCTL_CLIENT_MAXRETRIES", "7")
				setenv("MSKCTL_WAIT_TIMEOUT", "90s")

				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Output.Format).To(Equal("json"))
				Expect(cfg.Client.MaxRetries).To(Equal(7))
				Expect(cfg.Wait.Timeout).To(Equal(90 * time.Second))
			})

			It("should fall back to the standard AWS variables", func() {
				unsetenv("MSKCTL_AWS_REGION")
				setenv("AWS_REGION", "ap-northeast-1")
				setenv("AWS_PROFILE", "dev")

				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("ap-northeast-1"))
				Expect(cfg.AWS.Profile).To(Equal("dev"))
			})

			It("should let MSKCTL_AWS_REGION win over AWS_REGION", func() {
				setenv("AWS_REGION", "ap-northeast-1")
				setenv("MSKCTL_AWS_REGION", "sa-east-1")

				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("sa-east-1"))
			})
		})

		It("should apply values from Set", func() {
			config.Set("output.format", "yaml")
			cfg, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output.Format).To(Equal("yaml"))
			Expect(config.GetConfig()).To(BeIdenticalTo(cfg))
		})
	})

	Describe("SearchPaths", func() {
		It("should start with the working directory", func() {
			paths := config.SearchPaths()
			Expect(paths).NotTo(BeEmpty())
			Expect(paths[0]).To(Equal("."))
			Expect(paths[len(paths)-1]).To(HaveSuffix(config.AppName))
		})
	})

	Describe("Validate", func() {
		DescribeTable("rejects invalid settings",
			func(mutate func(*config.Config), message string) {
				cfg := config.DefaultConfig()
				mutate(cfg)
				Expect(cfg.Validate()).To(MatchError(ContainSubstring(message)))
			},
			Entry("output format", func(c *config.Config) { c.Output.Format = "xml" }, "invalid output format"),
			Entry("log level", func(c *config.Config) { c.Output.LogLevel = "verbose" }, "invalid log level"),
			Entry("log format", func(c *config.Config) { c.Output.LogFormat = "logfmt" }, "invalid log format"),
			Entry("retries", func(c *config.Config) { c.Client.MaxRetries = -2 }, "maxRetries"),
			Entry("rate limit", func(c *config.Config) { c.Client.RateLimit = -1 }, "rateLimit"),
			Entry("poll interval", func(c *config.Config) { c.Wait.PollInterval = 0 }, "pollInterval"),
			Entry("half a key pair", func(c *config.Config) { c.AWS.AccessKeyID = "AKID" }, "must be set together"),
		)
	})
})
