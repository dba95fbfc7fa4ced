package fakemsk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

const (
	operationInProgress = "UPDATE_IN_PROGRESS"
	operationComplete   = "UPDATE_COMPLETE"
)

type pendingChange struct {
	polls  int
	settle func()
}

type clusterRecord struct {
	id         string
	info       *api.ClusterInfo
	nodes      []api.NodeInfo
	secrets    []string
	operations []string
	pending    *pendingChange
}

// clone deep-copies a model value through its JSON form.
func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		panic(err)
	}
	return out
}

func (s *Server) lookupCluster(w http.ResponseWriter, r *http.Request) (*clusterRecord, bool) {
	clusterArn := pathVar(r, "clusterArn")
	rec, ok := s.clusters[clusterArn]
	if !ok {
		notFound(w, fmt.Sprintf("The cluster %s does not exist.", clusterArn), "clusterArn")
		return nil, false
	}
	return rec, true
}

// tick advances the pending change of a cluster by one describe call.
func (s *Server) tick(rec *clusterRecord) {
	if rec.pending == nil {
		return
	}
	rec.pending.polls--
	if rec.pending.polls <= 0 {
		p := rec.pending
		rec.pending = nil
		p.settle()
	}
}

func (s *Server) clusterView(rec *clusterRecord) *api.ClusterInfo {
	view := clone(rec.info)
	if tags := s.tags[*rec.info.ClusterArn]; len(tags) > 0 {
		view.Tags = copyTags(tags)
	}
	return view
}

func (s *Server) mutableInfo(rec *clusterRecord) *api.MutableClusterInfo {
	info := clone(rec.info)
	out := &api.MutableClusterInfo{
		ClientAuthentication: info.ClientAuthentication,
		EncryptionInfo:       info.EncryptionInfo,
		EnhancedMonitoring:   info.EnhancedMonitoring,
		LoggingInfo:          info.LoggingInfo,
		NumberOfBrokerNodes:  info.NumberOfBrokerNodes,
		OpenMonitoring:       info.OpenMonitoring,
	}
	if info.BrokerNodeGroupInfo != nil {
		out.InstanceType = info.BrokerNodeGroupInfo.InstanceType
		if si := info.BrokerNodeGroupInfo.StorageInfo; si != nil && si.EbsStorageInfo != nil {
			out.BrokerEBSVolumeInfo = []api.BrokerEBSVolumeInfo{{
				KafkaBrokerNodeId: ptr.String("All"),
				VolumeSizeGB:      si.EbsStorageInfo.VolumeSize,
			}}
		}
	}
	if sw := info.CurrentBrokerSoftwareInfo; sw != nil {
		out.KafkaVersion = sw.KafkaVersion
		if sw.ConfigurationArn != nil {
			out.ConfigurationInfo = &api.ConfigurationInfo{Arn: sw.ConfigurationArn, Revision: sw.ConfigurationRevision}
		}
	}
	return out
}

func (s *Server) startOperation(rec *clusterRecord, operationType string, source, target *api.MutableClusterInfo) string {
	name := *rec.info.ClusterName
	operationArn := s.arn(fmt.Sprintf("cluster-operation/%s/%s/%s", name, rec.id, uuid.NewString()))
	s.operations[operationArn] = &api.ClusterOperationInfo{
		ClientRequestId:   ptr.String(uuid.NewString()),
		ClusterArn:        rec.info.ClusterArn,
		CreationTime:      s.timestamp(),
		OperationArn:      ptr.String(operationArn),
		OperationState:    ptr.String(operationInProgress),
		OperationType:     ptr.String(operationType),
		SourceClusterInfo: source,
		TargetClusterInfo: target,
		OperationSteps: []api.ClusterOperationStep{{
			StepName: ptr.String("INITIALIZE_UPDATE"),
			StepInfo: &api.ClusterOperationStepInfo{StepStatus: ptr.String("IN_PROGRESS")},
		}},
	}
	rec.operations = append(rec.operations, operationArn)
	rec.info.ActiveOperationArn = ptr.String(operationArn)
	return operationArn
}

func (s *Server) completeOperation(rec *clusterRecord, operationArn string) {
	if op, ok := s.operations[operationArn]; ok {
		op.OperationState = ptr.String(operationComplete)
		op.EndTime = s.timestamp()
		for i := range op.OperationSteps {
			op.OperationSteps[i].StepInfo = &api.ClusterOperationStepInfo{StepStatus: ptr.String("SUCCEEDED")}
		}
	}
	rec.info.ActiveOperationArn = nil
}

// checkUpdatable rejects updates to busy clusters and stale currentVersion values.
func (s *Server) checkUpdatable(w http.ResponseWriter, rec *clusterRecord, currentVersion *string) bool {
	if rec.info.State != api.ClusterStateActive {
		conflict(w, fmt.Sprintf("The cluster is in %s state. Retry when it is ACTIVE.", rec.info.State))
		return false
	}
	if currentVersion == nil || *currentVersion != *rec.info.CurrentVersion {
		badRequest(w, "The version of the cluster does not match the currentVersion in the request.", "currentVersion")
		return false
	}
	return true
}

// applyUpdate mutates the cluster, bumps its version and starts a settling operation.
func (s *Server) applyUpdate(rec *clusterRecord, operationType string, transient api.ClusterState, mutate func()) string {
	source := s.mutableInfo(rec)
	mutate()
	rec.info.CurrentVersion = s.nextVersion()
	target := s.mutableInfo(rec)

	operationArn := s.startOperation(rec, operationType, source, target)
	rec.info.State = transient
	rec.pending = &pendingChange{
		polls: s.settleAfter,
		settle: func() {
			rec.info.State = api.ClusterStateActive
			s.completeOperation(rec, operationArn)
		},
	}
	return operationArn
}

func (s *Server) buildNodes(rec *clusterRecord, from, count int) []api.NodeInfo {
	info := rec.info
	subnets := info.BrokerNodeGroupInfo.ClientSubnets
	shortID := strings.SplitN(rec.id, "-", 2)[0]
	nodes := make([]api.NodeInfo, 0, count)
	for i := 0; i < count; i++ {
		brokerID := from + i + 1
		az := (brokerID - 1) % len(subnets)
		endpoint := fmt.Sprintf("b-%d.%s.%s.c2.kafka.%s.amazonaws.com", brokerID, *info.ClusterName, shortID, s.region)
		nodes = append(nodes, api.NodeInfo{
			AddedToClusterTime: ptr.String(s.now().UTC().Format("2006-01-02T15:04:05.000Z")),
			BrokerNodeInfo: &api.BrokerNodeInfo{
				AttachedENIId:             ptr.String(fmt.Sprintf("eni-%08x", brokerID)),
				BrokerId:                  ptr.Float64(float64(brokerID)),
				ClientSubnet:              ptr.String(subnets[az]),
				ClientVpcIpAddress:        ptr.String(fmt.Sprintf("10.0.%d.%d", az, 10+brokerID)),
				CurrentBrokerSoftwareInfo: clone(info.CurrentBrokerSoftwareInfo),
				Endpoints:                 []string{endpoint},
			},
			InstanceType: info.BrokerNodeGroupInfo.InstanceType,
			NodeARN:      ptr.String(s.arn(fmt.Sprintf("broker/%s/%s/%d", *info.ClusterName, rec.id, brokerID))),
			NodeType:     api.NodeTypeBroker,
		})
	}
	return nodes
}

func openMonitoringFromInfo(in *api.OpenMonitoringInfo) *api.OpenMonitoring {
	if in == nil || in.Prometheus == nil {
		return nil
	}
	out := &api.OpenMonitoring{Prometheus: &api.Prometheus{}}
	if in.Prometheus.JmxExporter != nil {
		out.Prometheus.JmxExporter = &api.JmxExporter{EnabledInBroker: in.Prometheus.JmxExporter.EnabledInBroker}
	}
	if in.Prometheus.NodeExporter != nil {
		out.Prometheus.NodeExporter = &api.NodeExporter{EnabledInBroker: in.Prometheus.NodeExporter.EnabledInBroker}
	}
	return out
}

func (s *Server) createCluster(w http.ResponseWriter, r *http.Request) {
	var in api.CreateClusterRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}
	if in.ClusterName == nil || *in.ClusterName == "" {
		badRequest(w, "clusterName is required.", "clusterName")
		return
	}
	if in.BrokerNodeGroupInfo == nil || len(in.BrokerNodeGroupInfo.ClientSubnets) == 0 || in.BrokerNodeGroupInfo.InstanceType == nil {
		badRequest(w, "brokerNodeGroupInfo requires clientSubnets and instanceType.", "brokerNodeGroupInfo")
		return
	}
	brokers := int(ptr.ToInt32(in.NumberOfBrokerNodes))
	if brokers < 1 || brokers%len(in.BrokerNodeGroupInfo.ClientSubnets) != 0 {
		badRequest(w, "The number of broker nodes must be a multiple of the number of client subnets.", "numberOfBrokerNodes")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.clusters {
		if *rec.info.ClusterName == *in.ClusterName {
			conflict(w, fmt.Sprintf("A cluster with the name %s already exists.", *in.ClusterName))
			return
		}
	}

	id := uuid.NewString() + "-2"
	clusterArn := s.arn(fmt.Sprintf("cluster/%s/%s", *in.ClusterName, id))

	software := &api.BrokerSoftwareInfo{KafkaVersion: in.KafkaVersion}
	if in.ConfigurationInfo != nil {
		software.ConfigurationArn = in.ConfigurationInfo.Arn
		software.ConfigurationRevision = in.ConfigurationInfo.Revision
	}

	encryption := clone(in.EncryptionInfo)
	if encryption == nil {
		encryption = &api.EncryptionInfo{}
	}
	if encryption.EncryptionAtRest == nil {
		encryption.EncryptionAtRest = &api.EncryptionAtRest{
			DataVolumeKMSKeyId: ptr.String(s.arn("key/aws-managed-kafka")),
		}
	}
	if encryption.EncryptionInTransit == nil {
		encryption.EncryptionInTransit = &api.EncryptionInTransit{ClientBroker: api.ClientBrokerTls, InCluster: ptr.Bool(true)}
	}

	monitoring := in.EnhancedMonitoring
	if monitoring == "" {
		monitoring = api.EnhancedMonitoringDefault
	}

	info := &api.ClusterInfo{
		BrokerNodeGroupInfo:       clone(in.BrokerNodeGroupInfo),
		ClientAuthentication:      clone(in.ClientAuthentication),
		ClusterArn:                ptr.String(clusterArn),
		ClusterName:               in.ClusterName,
		CreationTime:              s.timestamp(),
		CurrentBrokerSoftwareInfo: software,
		CurrentVersion:            s.nextVersion(),
		EncryptionInfo:            encryption,
		EnhancedMonitoring:        monitoring,
		LoggingInfo:               clone(in.LoggingInfo),
		NumberOfBrokerNodes:       in.NumberOfBrokerNodes,
		OpenMonitoring:            openMonitoringFromInfo(in.OpenMonitoring),
		State:                     api.ClusterStateCreating,
		ZookeeperConnectString: ptr.String(fmt.Sprintf("z-1.%s.%s.c2.kafka.%s.amazonaws.com:2181",
			*in.ClusterName, strings.SplitN(id, "-", 2)[0], s.region)),
	}
	rec := &clusterRecord{id: id, info: info}
	rec.nodes = s.buildNodes(rec, 0, brokers)

	operationArn := s.startOperation(rec, "CREATE", nil, s.mutableInfo(rec))
	rec.pending = &pendingChange{
		polls: s.settleAfter,
		settle: func() {
			info.State = api.ClusterStateActive
			s.completeOperation(rec, operationArn)
		},
	}

	s.clusters[clusterArn] = rec
	s.clusterOrder = append(s.clusterOrder, clusterArn)
	if len(in.Tags) > 0 {
		s.tags[clusterArn] = copyTags(in.Tags)
	}

	writeJSON(w, http.StatusOK, &api.CreateClusterResponse{
		ClusterArn:  info.ClusterArn,
		ClusterName: info.ClusterName,
		State:       info.State,
	})
}

func (s *Server) describeCluster(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}
	s.tick(rec)
	if _, still := s.clusters[*rec.info.ClusterArn]; !still {
		notFound(w, fmt.Sprintf("The cluster %s does not exist.", *rec.info.ClusterArn), "clusterArn")
		return
	}

	writeJSON(w, http.StatusOK, &api.DescribeClusterResponse{ClusterInfo: s.clusterView(rec)})
}

func (s *Server) deleteCluster(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}
	if v := r.URL.Query().Get("currentVersion"); v != "" && v != *rec.info.CurrentVersion {
		badRequest(w, "The version of the cluster does not match the currentVersion in the request.", "currentVersion")
		return
	}
	if rec.info.State == api.ClusterStateDeleting {
		conflict(w, "The cluster is already being deleted.")
		return
	}

	clusterArn := *rec.info.ClusterArn
	rec.info.State = api.ClusterStateDeleting
	rec.pending = &pendingChange{
		polls: s.settleAfter,
		settle: func() {
			delete(s.clusters, clusterArn)
			delete(s.tags, clusterArn)
			for i, a := range s.clusterOrder {
				if a == clusterArn {
					s.clusterOrder = append(s.clusterOrder[:i], s.clusterOrder[i+1:]...)
					break
				}
			}
		},
	}

	writeJSON(w, http.StatusOK, &api.DeleteClusterResponse{
		ClusterArn: ptr.String(clusterArn),
		State:      api.ClusterStateDeleting,
	})
}

func (s *Server) listClusters(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filter := r.URL.Query().Get("clusterNameFilter")
	var matched []*clusterRecord
	for _, clusterArn := range s.clusterOrder {
		rec := s.clusters[clusterArn]
		if strings.HasPrefix(*rec.info.ClusterName, filter) {
			matched = append(matched, rec)
		}
	}

	start, end, next, err := s.page(r, len(matched))
	if err != nil {
		badRequest(w, err.Error(), "nextToken")
		return
	}
	out := &api.ListClustersResponse{NextToken: next, ClusterInfoList: []api.ClusterInfo{}}
	for _, rec := range matched[start:end] {
		out.ClusterInfoList = append(out.ClusterInfoList, *s.clusterView(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listNodes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}
	start, end, next, err := s.page(r, len(rec.nodes))
	if err != nil {
		badRequest(w, err.Error(), "nextToken")
		return
	}
	writeJSON(w, http.StatusOK, &api.ListNodesResponse{
		NextToken:    next,
		NodeInfoList: rec.nodes[start:end],
	})
}

func (s *Server) getBootstrapBrokers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}

	join := func(port int) *string {
		var hosts []string
		for _, n := range rec.nodes {
			for _, e := range n.BrokerNodeInfo.Endpoints {
				hosts = append(hosts, fmt.Sprintf("%s:%d", e, port))
			}
		}
		return ptr.String(strings.Join(hosts, ","))
	}

	clientBroker := api.ClientBrokerTls
	if enc := rec.info.EncryptionInfo; enc != nil && enc.EncryptionInTransit != nil && enc.EncryptionInTransit.ClientBroker != "" {
		clientBroker = enc.EncryptionInTransit.ClientBroker
	}

	out := &api.GetBootstrapBrokersResponse{}
	if clientBroker == api.ClientBrokerPlaintext || clientBroker == api.ClientBrokerTlsPlaintext {
		out.BootstrapBrokerString = join(9092)
	}
	if clientBroker == api.ClientBrokerTls || clientBroker == api.ClientBrokerTlsPlaintext {
		out.BootstrapBrokerStringTls = join(9094)
	}
	if auth := rec.info.ClientAuthentication; auth != nil && auth.Sasl != nil {
		if auth.Sasl.Scram != nil && ptr.ToBool(auth.Sasl.Scram.Enabled) {
			out.BootstrapBrokerStringSaslScram = join(9096)
		}
		if auth.Sasl.Iam != nil && ptr.ToBool(auth.Sasl.Iam.Enabled) {
			out.BootstrapBrokerStringSaslIam = join(9098)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listClusterOperations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}
	start, end, next, err := s.page(r, len(rec.operations))
	if err != nil {
		badRequest(w, err.Error(), "nextToken")
		return
	}
	out := &api.ListClusterOperationsResponse{NextToken: next, ClusterOperationInfoList: []api.ClusterOperationInfo{}}
	for _, operationArn := range rec.operations[start:end] {
		out.ClusterOperationInfoList = append(out.ClusterOperationInfoList, *s.operations[operationArn])
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) describeClusterOperation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	operationArn := pathVar(r, "clusterOperationArn")
	op, ok := s.operations[operationArn]
	if !ok {
		notFound(w, fmt.Sprintf("The cluster operation %s does not exist.", operationArn), "clusterOperationArn")
		return
	}
	if rec, ok := s.clusters[*op.ClusterArn]; ok {
		s.tick(rec)
	}
	writeJSON(w, http.StatusOK, &api.DescribeClusterOperationResponse{ClusterOperationInfo: op})
}

func (s *Server) rebootBroker(w http.ResponseWriter, r *http.Request) {
	var in api.RebootBrokerRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}
	if rec.info.State != api.ClusterStateActive {
		conflict(w, fmt.Sprintf("The cluster is in %s state. Retry when it is ACTIVE.", rec.info.State))
		return
	}
	if len(in.BrokerIds) == 0 {
		badRequest(w, "brokerIds must contain at least one broker.", "brokerIds")
		return
	}
	known := map[string]bool{}
	for _, n := range rec.nodes {
		known[fmt.Sprintf("%g", ptr.ToFloat64(n.BrokerNodeInfo.BrokerId))] = true
	}
	for _, id := range in.BrokerIds {
		if !known[id] {
			badRequest(w, fmt.Sprintf("Broker %s does not exist in the cluster.", id), "brokerIds")
			return
		}
	}

	operationArn := s.startOperation(rec, "REBOOT_NODE", nil, nil)
	rec.info.State = api.ClusterStateRebootingBroker
	rec.pending = &pendingChange{
		polls: s.settleAfter,
		settle: func() {
			rec.info.State = api.ClusterStateActive
			s.completeOperation(rec, operationArn)
		},
	}

	writeJSON(w, http.StatusOK, &api.RebootBrokerResponse{
		ClusterArn:          rec.info.ClusterArn,
		ClusterOperationArn: ptr.String(operationArn),
	})
}
