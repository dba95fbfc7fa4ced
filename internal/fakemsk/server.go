// Package fakemsk is an in-memory stand-in for the MSK REST API, built for
// exercising the client end to end with httptest. It keeps just enough state
// to answer every operation plausibly; it does not model MSK's behavior.
package fakemsk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nandemo-ya/mskgo/internal/common"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
	"github.com/nandemo-ya/mskgo/internal/logging"
)

const defaultPageSize = 10

// Option configures a Server
type Option func(*Server)

// WithRegion sets the region used in generated ARNs and endpoints
func WithRegion(region string) Option {
	return func(s *Server) { s.region = region }
}

// WithAccountID sets the account used in generated ARNs
func WithAccountID(accountID string) Option {
	return func(s *Server) { s.accountID = accountID }
}

// WithSettleAfter sets how many describe calls a pending cluster change takes
// to settle. The default of 1 settles on the first describe.
func WithSettleAfter(polls int) Option {
	return func(s *Server) { s.settleAfter = polls }
}

// WithPageSize sets the page size used when a list call omits maxResults
func WithPageSize(n int) Option {
	return func(s *Server) { s.pageSize = n }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithKafkaVersions replaces the advertised Apache Kafka versions
func WithKafkaVersions(versions ...api.KafkaVersion) Option {
	return func(s *Server) { s.kafkaVersions = versions }
}

// WithMetrics registers a fakemsk_requests_total{operation,code} counter with reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Server) {
		s.requests = promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fakemsk_requests_total",
				Help: "Total number of requests served by operation and status code",
			},
			[]string{"operation", "code"},
		)
	}
}

type fault struct {
	status  int
	code    string
	message string
}

// Server is an http.Handler serving the MSK control-plane routes
type Server struct {
	mu sync.Mutex

	router      *mux.Router
	region      string
	accountID   string
	settleAfter int
	pageSize    int
	now         func() time.Time

	clusters       map[string]*clusterRecord
	clusterOrder   []string
	configurations map[string]*configurationRecord
	configOrder    []string
	operations     map[string]*api.ClusterOperationInfo
	tags           map[string]map[string]string
	kafkaVersions  []api.KafkaVersion
	faults         map[string][]fault
	calls          map[string]int
	versionSeq     int
	requests       *prometheus.CounterVec
}

// New creates a Server
func New(opts ...Option) *Server {
	s := &Server{
		region:         "us-east-1",
		accountID:      "123456789012",
		settleAfter:    1,
		pageSize:       defaultPageSize,
		now:            time.Now,
		clusters:       map[string]*clusterRecord{},
		configurations: map[string]*configurationRecord{},
		operations:     map[string]*api.ClusterOperationInfo{},
		tags:           map[string]map[string]string{},
		faults:         map[string][]fault{},
		calls:          map[string]int{},
		kafkaVersions: []api.KafkaVersion{
			{Version: ptr.String("2.8.1"), Status: api.KafkaVersionStatusDeprecated},
			{Version: ptr.String("3.5.1"), Status: api.KafkaVersionStatusActive},
			{Version: ptr.String("3.6.0"), Status: api.KafkaVersionStatusActive},
			{Version: ptr.String("3.7.x"), Status: api.KafkaVersionStatusActive},
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = mux.NewRouter().UseEncodedPath()
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	handlers := map[string]http.HandlerFunc{
		"BatchAssociateScramSecret":     s.batchAssociateScramSecret,
		"BatchDisassociateScramSecret":  s.batchDisassociateScramSecret,
		"CreateCluster":                 s.createCluster,
		"CreateConfiguration":           s.createConfiguration,
		"DeleteCluster":                 s.deleteCluster,
		"DeleteConfiguration":           s.deleteConfiguration,
		"DescribeCluster":               s.describeCluster,
		"DescribeClusterOperation":      s.describeClusterOperation,
		"DescribeConfiguration":         s.describeConfiguration,
		"DescribeConfigurationRevision": s.describeConfigurationRevision,
		"GetBootstrapBrokers":           s.getBootstrapBrokers,
		"GetCompatibleKafkaVersions":    s.getCompatibleKafkaVersions,
		"ListClusterOperations":         s.listClusterOperations,
		"ListClusters":                  s.listClusters,
		"ListConfigurationRevisions":    s.listConfigurationRevisions,
		"ListConfigurations":            s.listConfigurations,
		"ListKafkaVersions":             s.listKafkaVersions,
		"ListNodes":                     s.listNodes,
		"ListScramSecrets":              s.listScramSecrets,
		"ListTagsForResource":           s.listTagsForResource,
		"RebootBroker":                  s.rebootBroker,
		"TagResource":                   s.tagResource,
		"UntagResource":                 s.untagResource,
		"UpdateBrokerCount":             s.updateBrokerCount,
		"UpdateBrokerStorage":           s.updateBrokerStorage,
		"UpdateBrokerType":              s.updateBrokerType,
		"UpdateClusterConfiguration":    s.updateClusterConfiguration,
		"UpdateClusterKafkaVersion":     s.updateClusterKafkaVersion,
		"UpdateConfiguration":           s.updateConfiguration,
		"UpdateMonitoring":              s.updateMonitoring,
		"UpdateSecurity":                s.updateSecurity,
	}

	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		binding := api.Bindings[name]
		s.router.HandleFunc(binding.Path, s.instrument(name, handlers[name])).Methods(binding.Method)
	}
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NotFoundException", "no route for "+r.Method+" "+r.URL.Path, "")
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("x-amzn-RequestId", uuid.NewString())
	s.router.ServeHTTP(w, r)
}

func (s *Server) instrument(operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[operation]++
		var injected *fault
		if queue := s.faults[operation]; len(queue) > 0 {
			injected = &queue[0]
			s.faults[operation] = queue[1:]
		}
		s.mu.Unlock()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if s.requests != nil {
				s.requests.WithLabelValues(operation, strconv.Itoa(rec.status)).Inc()
			}
		}()

		logging.Debug("fakemsk request", "operation", operation, "method", r.Method, "path", r.URL.EscapedPath())
		if injected != nil {
			writeError(rec, injected.status, injected.code, injected.message, "")
			return
		}
		next(rec, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Stats is a snapshot of the server's state
type Stats struct {
	Clusters       int            `json:"clusters"`
	Configurations int            `json:"configurations"`
	Operations     int            `json:"operations"`
	Calls          map[string]int `json:"calls"`
}

// Stats returns counts of stored resources and calls per operation
func (s *Server) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make(map[string]int, len(s.calls))
	for op, n := range s.calls {
		calls[op] = n
	}
	return Stats{
		Clusters:       len(s.clusters),
		Configurations: len(s.configurations),
		Operations:     len(s.operations),
		Calls:          calls,
	}
}

// InjectError makes the next call of operation fail with the given status and error code
func (s *Server) InjectError(operation string, status int, code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[operation] = append(s.faults[operation], fault{status: status, code: code, message: message})
}

// Calls returns how many times operation was invoked
func (s *Server) Calls(operation string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[operation]
}

// SetClusterState forces the state of a cluster and drops any pending change
func (s *Server) SetClusterState(clusterArn string, state api.ClusterState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.clusters[clusterArn]
	if !ok {
		return fmt.Errorf("cluster %s not found", clusterArn)
	}
	rec.info.State = state
	rec.pending = nil
	if state == api.ClusterStateFailed {
		rec.info.StateInfo = &api.StateInfo{Code: ptr.String("InternalError"), Message: ptr.String("forced failure")}
	}
	return nil
}

// FailOperation marks a cluster operation as UPDATE_FAILED and returns its cluster to ACTIVE
func (s *Server) FailOperation(operationArn, code, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.operations[operationArn]
	if !ok {
		return fmt.Errorf("operation %s not found", operationArn)
	}
	op.OperationState = ptr.String("UPDATE_FAILED")
	op.ErrorInfo = &api.ErrorInfo{ErrorCode: ptr.String(code), ErrorString: ptr.String(message)}
	op.EndTime = s.timestamp()
	if rec, ok := s.clusters[*op.ClusterArn]; ok {
		rec.pending = nil
		rec.info.State = api.ClusterStateActive
		rec.info.ActiveOperationArn = nil
	}
	return nil
}

func (s *Server) nextVersion() *string {
	s.versionSeq++
	return ptr.String(fmt.Sprintf("K%08X", s.versionSeq))
}

func (s *Server) arn(resource string) string {
	return fmt.Sprintf("arn:aws:kafka:%s:%s:%s", s.region, s.accountID, resource)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil || status == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("fakemsk failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message, invalidParameter string) {
	w.Header().Set("X-Amzn-ErrorType", code+":http://internal.amazon.com/coral/com.amazonaws.kafka/")
	body := map[string]string{"message": message}
	if invalidParameter != "" {
		body["invalidParameter"] = invalidParameter
	}
	writeJSON(w, status, body)
}

func badRequest(w http.ResponseWriter, message, param string) {
	writeError(w, http.StatusBadRequest, "BadRequestException", message, param)
}

func notFound(w http.ResponseWriter, message, param string) {
	writeError(w, http.StatusNotFound, "NotFoundException", message, param)
}

func conflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, "ConflictException", message, "")
}

// decodeBody decodes the JSON body into in; an empty body is accepted.
func decodeBody(r *http.Request, in interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

func pathVar(r *http.Request, name string) string {
	v := mux.Vars(r)[name]
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// page slices n items starting at the offset encoded in nextToken.
func (s *Server) page(r *http.Request, n int) (start, end int, next *string, err error) {
	q := r.URL.Query()
	size := s.pageSize
	if v := q.Get("maxResults"); v != "" {
		size, err = strconv.Atoi(v)
		if err != nil || size < 1 || size > 100 {
			return 0, 0, nil, fmt.Errorf("maxResults must be between 1 and 100")
		}
	}
	if v := q.Get("nextToken"); v != "" {
		start, err = strconv.Atoi(v)
		if err != nil || start < 0 || start > n {
			return 0, 0, nil, fmt.Errorf("invalid nextToken")
		}
	}
	end = start + size
	if end >= n {
		return start, n, nil, nil
	}
	return start, end, ptr.String(strconv.Itoa(end)), nil
}

func (s *Server) timestamp() *common.Timestamp {
	return &common.Timestamp{Time: s.now().UTC()}
}

func copyTags(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
