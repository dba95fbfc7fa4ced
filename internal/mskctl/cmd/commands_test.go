package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/nandemo-ya/mskgo/internal/awsclient"
	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
	"github.com/nandemo-ya/mskgo/internal/config"
	"github.com/nandemo-ya/mskgo/internal/fakemsk"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/mskctl/cmd"
)

const clusterRequest = `
clusterName: orders
kafkaVersion: 3.6.0
numberOfBrokerNodes: 3
brokerNodeGroupInfo:
  instanceType: kafka.m5.large
  clientSubnets:
    - subnet-a
    - subnet-b
    - subnet-c
  storageInfo:
    ebsStorageInfo:
      volumeSize: 100
tags:
  team: payments
`

var _ = Describe("mskctl", func() {
	var (
		fake       *fakemsk.Server
		server     *httptest.Server
		tempDir    string
		configPath string
	)

	run := func(args ...string) (string, error) {
		root := cmd.NewRootCmd()
		var stdout, stderr bytes.Buffer
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		root.SetArgs(append([]string{"--config", configPath, "--endpoint", server.URL}, args...))
		err := root.ExecuteContext(context.Background())
		return stdout.String(), err
	}

	writeFile := func(name, content string) string {
		path := filepath.Join(tempDir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	createCluster := func() {
		path := writeFile("cluster.yaml", clusterRequest)
		_, err := run("clusters", "create", "-f", path)
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		fake = fakemsk.New()
		server = httptest.NewServer(fake)
		tempDir = GinkgoT().TempDir()
		configPath = writeFile("mskctl.yaml", `
aws:
  region: us-east-1
  accessKeyID: AKIDEXAMPLE
  secretAccessKey: secret
client:
  maxRetries: -1
wait:
  pollInterval: 10ms
  timeout: 5s
output:
  logLevel: error
`)
	})

	AfterEach(func() {
		server.Close()
		config.ResetConfig()
	})

	Describe("version", func() {
		It("should print the MSK API version as JSON", func() {
			out, err := run("version", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var info map[string]string
			Expect(json.Unmarshal([]byte(out), &info)).To(Succeed())
			Expect(info).To(HaveKeyWithValue("apiVersion", api.APIVersion))
			Expect(info).To(HaveKey("goVersion"))
		})

		It("should let flags win over the config file", func() {
			configPath = writeFile("mskctl.yaml", `
aws:
  region: us-east-1
output:
  format: yaml
  logLevel: error
`)
			out, err := run("version")
			Expect(err).NotTo(HaveOccurred())
			var info map[string]string
			Expect(yaml.Unmarshal([]byte(out), &info)).To(Succeed())
			Expect(info).To(HaveKeyWithValue("apiVersion", api.APIVersion))
			Expect(strings.TrimSpace(out)).NotTo(HavePrefix("{"))

			out, err = run("version", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			Expect(json.Unmarshal([]byte(out), &info)).To(Succeed())
		})

		It("should reject an unknown output format", func() {
			_, err := run("version", "-o", "xml")
			Expect(err).To(MatchError(ContainSubstring("invalid output format")))
		})
	})

	Describe("clusters", func() {
		It("should create a cluster from a YAML request", func() {
			path := writeFile("cluster.yaml", clusterRequest)
			out, err := run("clusters", "create", "-f", path, "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var resp api.CreateClusterResponse
			Expect(json.Unmarshal([]byte(out), &resp)).To(Succeed())
			Expect(*resp.ClusterName).To(Equal("orders"))
			Expect(resp.State).To(Equal(api.ClusterStateCreating))
			Expect(*resp.ClusterArn).To(HavePrefix("arn:aws:kafka:us-east-1:123456789012:cluster/orders/"))
		})

		It("should create a cluster from a JSON request and wait for it", func() {
			path := writeFile("cluster.json", `{
  "clusterName": "orders",
  "kafkaVersion": "3.6.0",
  "numberOfBrokerNodes": 2,
  "brokerNodeGroupInfo": {"instanceType": "kafka.t3.small", "clientSubnets": ["subnet-a", "subnet-b"]}
}`)
			out, err := run("clusters", "create", "-f", path, "--wait")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("orders"))
			Expect(out).To(ContainSubstring("ACTIVE"))
		})

		It("should fail client-side validation before calling the service", func() {
			path := writeFile("cluster.yaml", "clusterName: orders\n")
			_, err := run("clusters", "create", "-f", path)

			var invalid *awsclient.InvalidParamsError
			Expect(errorsAs(err, &invalid)).To(BeTrue())
			Expect(invalid.Fields).To(ContainElements("BrokerNodeGroupInfo", "KafkaVersion", "NumberOfBrokerNodes"))
			Expect(fake.Calls("CreateCluster")).To(BeZero())
		})

		It("should reject a malformed request file", func() {
			path := writeFile("cluster.yaml", "clusterName: [orders\n")
			_, err := run("clusters", "create", "-f", path)
			Expect(err).To(MatchError(ContainSubstring("invalid request file")))
		})

		It("should list and describe clusters by name", func() {
			createCluster()

			out, err := run("clusters", "list")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("NAME"))
			Expect(out).To(ContainSubstring("orders"))
			Expect(out).To(ContainSubstring("kafka.m5.large"))

			out, err = run("clusters", "describe", "orders", "-o", "yaml")
			Expect(err).NotTo(HaveOccurred())

			var doc map[string]interface{}
			Expect(yaml.Unmarshal([]byte(out), &doc)).To(Succeed())
			Expect(doc).To(HaveKeyWithValue("clusterName", "orders"))
			Expect(doc).To(HaveKeyWithValue("state", "ACTIVE"))
			Expect(doc).To(HaveKeyWithValue("numberOfBrokerNodes", 3))
		})

		It("should render details as a table", func() {
			createCluster()

			out, err := run("clusters", "describe", "orders")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("100 GiB"))
			Expect(out).To(ContainSubstring("subnet-a,subnet-b,subnet-c"))
			Expect(out).To(ContainSubstring("Tag team"))
		})

		It("should report an unknown cluster name", func() {
			_, err := run("clusters", "describe", "missing")
			Expect(errorsIs(err, kafka.ErrClusterNotFound)).To(BeTrue())
		})

		It("should surface modeled service errors", func() {
			createCluster()
			fake.InjectError("DescribeCluster", http.StatusForbidden, "ForbiddenException", "denied")

			_, err := run("clusters", "describe", "orders")
			var forbidden *api.ForbiddenException
			Expect(errorsAs(err, &forbidden)).To(BeTrue())
		})

		It("should show bootstrap brokers and nodes", func() {
			createCluster()

			out, err := run("clusters", "brokers", "orders")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("tls"))
			Expect(out).To(ContainSubstring(":9094"))

			out, err = run("clusters", "nodes", "orders", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			var nodes []api.NodeInfo
			Expect(json.Unmarshal([]byte(out), &nodes)).To(Succeed())
			Expect(nodes).To(HaveLen(3))
		})

		It("should resize a cluster and wait for the operation", func() {
			createCluster()
			_, err := run("clusters", "describe", "orders")
			Expect(err).NotTo(HaveOccurred())

			out, err := run("clusters", "update-broker-count", "orders", "--count", "6", "--wait", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var op api.ClusterOperationInfo
			Expect(json.Unmarshal([]byte(out), &op)).To(Succeed())
			Expect(*op.OperationType).To(Equal("INCREASE_BROKER_COUNT"))
			Expect(*op.OperationState).To(Equal(kafka.OperationStateComplete))

			out, err = run("clusters", "operations", "orders")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("INCREASE_BROKER_COUNT"))
			Expect(out).To(ContainSubstring("CREATE"))
		})

		It("should grow broker storage", func() {
			createCluster()
			_, err := run("clusters", "describe", "orders")
			Expect(err).NotTo(HaveOccurred())

			out, err := run("clusters", "update-storage", "orders", "--size", "200", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("clusterOperationArn"))
			Expect(fake.Calls("UpdateBrokerStorage")).To(Equal(1))
		})

		It("should stop before updating when the current version cannot be read", func() {
			createCluster()
			fake.InjectError("DescribeCluster", http.StatusConflict, "ConflictException", "busy")

			_, err := run("clusters", "update-broker-count", "orders", "--count", "6")
			var conflictErr *api.ConflictException
			Expect(errorsAs(err, &conflictErr)).To(BeTrue())
			Expect(fake.Calls("UpdateBrokerCount")).To(BeZero())
		})

		It("should list upgrade targets and upgrade", func() {
			createCluster()
			_, err := run("clusters", "describe", "orders")
			Expect(err).NotTo(HaveOccurred())

			out, err := run("kafka-versions", "--cluster", "orders")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("3.6.0"))
			Expect(out).To(ContainSubstring("3.7.x"))

			_, err = run("clusters", "upgrade", "orders", "--kafka-version", "3.7.x", "--wait")
			Expect(err).NotTo(HaveOccurred())

			out, err = run("clusters", "describe", "orders", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(`"kafkaVersion": "3.7.x"`))
		})

		It("should tag and untag a cluster", func() {
			createCluster()

			out, err := run("tag", "orders", "env=prod", "tier=gold", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			var tags map[string]string
			Expect(json.Unmarshal([]byte(out), &tags)).To(Succeed())
			Expect(tags).To(Equal(map[string]string{"team": "payments", "env": "prod", "tier": "gold"}))

			out, err = run("untag", "orders", "env", "team", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			tags = nil
			Expect(json.Unmarshal([]byte(out), &tags)).To(Succeed())
			Expect(tags).To(Equal(map[string]string{"tier": "gold"}))
		})

		It("should reject malformed tags", func() {
			createCluster()
			_, err := run("tag", "orders", "novalue")
			Expect(err).To(MatchError(ContainSubstring("expected KEY=VALUE")))
		})

		It("should delete a cluster and wait until it is gone", func() {
			createCluster()
			_, err := run("clusters", "describe", "orders")
			Expect(err).NotTo(HaveOccurred())

			out, err := run("clusters", "delete", "orders", "--wait")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("DELETED"))

			out, err = run("clusters", "list", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(out)).To(Equal("[]"))
		})

		It("should reject an unknown state for wait", func() {
			createCluster()
			_, err := run("clusters", "wait", "orders", "--state", "SLEEPING")
			Expect(errorsIs(err, api.ErrInvalidEnumValue)).To(BeTrue())
		})
	})

	Describe("configurations", func() {
		It("should create, revise and show configurations by name", func() {
			props := writeFile("server.properties", "auto.create.topics.enable=false\nlog.retention.hours=72\n")

			out, err := run("configurations", "create", "--name", "base", "--server-properties", props,
				"--kafka-versions", "3.6.0", "--description", "baseline", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			var created api.CreateConfigurationResponse
			Expect(json.Unmarshal([]byte(out), &created)).To(Succeed())
			Expect(*created.LatestRevision.Revision).To(Equal(int64(1)))

			updated := writeFile("server2.properties", "auto.create.topics.enable=true\n")
			_, err = run("configurations", "update", "base", "--server-properties", updated)
			Expect(err).NotTo(HaveOccurred())

			out, err = run("configurations", "list")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("base"))

			out, err = run("configurations", "revisions", "base", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			var revisions []api.ConfigurationRevision
			Expect(json.Unmarshal([]byte(out), &revisions)).To(Succeed())
			Expect(revisions).To(HaveLen(2))

			out, err = run("configurations", "revision", "base", "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("auto.create.topics.enable=false\nlog.retention.hours=72\n"))

			out, err = run("configurations", "describe", *created.Arn)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("baseline"))
		})

		It("should tag a configuration by ARN", func() {
			props := writeFile("server.properties", "auto.create.topics.enable=false\n")
			out, err := run("configurations", "create", "--name", "base", "--server-properties", props, "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			var created api.CreateConfigurationResponse
			Expect(json.Unmarshal([]byte(out), &created)).To(Succeed())

			out, err = run("tag", *created.Arn, "owner=platform", "-o", "json")
			Expect(err).NotTo(HaveOccurred())
			var tags map[string]string
			Expect(json.Unmarshal([]byte(out), &tags)).To(Succeed())
			Expect(tags).To(Equal(map[string]string{"owner": "platform"}))

			out, err = run("tag", *created.Arn)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("platform"))
		})

		It("should reject an invalid revision number", func() {
			_, err := run("configurations", "revision", "base", "zero")
			Expect(err).To(MatchError(ContainSubstring("invalid revision")))
		})

		It("should report an unknown configuration name", func() {
			_, err := run("configurations", "describe", "nope")
			Expect(err).To(MatchError(ContainSubstring("configuration not found")))
		})
	})

	Describe("kafka-versions", func() {
		It("should list every version with its status", func() {
			out, err := run("kafka-versions")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("2.8.1"))
			Expect(out).To(ContainSubstring("DEPRECATED"))
			Expect(out).To(ContainSubstring("ACTIVE"))
		})
	})
})
