package fakemsk

import (
	"fmt"
	"net/http"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

type updateResult struct {
	ClusterArn          *string `json:"clusterArn,omitempty"`
	ClusterOperationArn *string `json:"clusterOperationArn,omitempty"`
}

func (s *Server) respondUpdate(w http.ResponseWriter, rec *clusterRecord, operationArn string) {
	writeJSON(w, http.StatusOK, &updateResult{
		ClusterArn:          rec.info.ClusterArn,
		ClusterOperationArn: ptr.String(operationArn),
	})
}

func (s *Server) updateBrokerCount(w http.ResponseWriter, r *http.Request) {
	var in api.UpdateBrokerCountRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok || !s.checkUpdatable(w, rec, in.CurrentVersion) {
		return
	}
	current := int(ptr.ToInt32(rec.info.NumberOfBrokerNodes))
	target := int(ptr.ToInt32(in.TargetNumberOfBrokerNodes))
	if target <= current {
		badRequest(w, "The target number of broker nodes must be greater than the current number.", "targetNumberOfBrokerNodes")
		return
	}
	if target%len(rec.info.BrokerNodeGroupInfo.ClientSubnets) != 0 {
		badRequest(w, "The number of broker nodes must be a multiple of the number of client subnets.", "targetNumberOfBrokerNodes")
		return
	}

	operationArn := s.applyUpdate(rec, "INCREASE_BROKER_COUNT", api.ClusterStateUpdating, func() {
		rec.nodes = append(rec.nodes, s.buildNodes(rec, current, target-current)...)
		rec.info.NumberOfBrokerNodes = ptr.Int32(int32(target))
	})
	s.respondUpdate(w, rec, operationArn)
}

func (s *Server) updateBrokerStorage(w http.ResponseWriter, r *http.Request) {
	var in api.UpdateBrokerStorageRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok || !s.checkUpdatable(w, rec, in.CurrentVersion) {
		return
	}
	if len(in.TargetBrokerEBSVolumeInfo) == 0 || in.TargetBrokerEBSVolumeInfo[0].VolumeSizeGB == nil {
		badRequest(w, "targetBrokerEBSVolumeInfo must name a volume size.", "targetBrokerEBSVolumeInfo")
		return
	}
	size := *in.TargetBrokerEBSVolumeInfo[0].VolumeSizeGB
	if si := rec.info.BrokerNodeGroupInfo.StorageInfo; si != nil && si.EbsStorageInfo != nil && ptr.ToInt32(si.EbsStorageInfo.VolumeSize) >= size {
		badRequest(w, "The target volume size must be greater than the current volume size.", "targetBrokerEBSVolumeInfo")
		return
	}

	operationArn := s.applyUpdate(rec, "UPDATE_BROKER_STORAGE", api.ClusterStateUpdating, func() {
		group := clone(rec.info.BrokerNodeGroupInfo)
		group.StorageInfo = &api.StorageInfo{EbsStorageInfo: &api.EBSStorageInfo{VolumeSize: ptr.Int32(size)}}
		rec.info.BrokerNodeGroupInfo = group
	})
	s.respondUpdate(w, rec, operationArn)
}

func (s *Server) updateBrokerType(w http.ResponseWriter, r *http.Request) {
	var in api.UpdateBrokerTypeRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok || !s.checkUpdatable(w, rec, in.CurrentVersion) {
		return
	}
	if in.TargetInstanceType == nil || *in.TargetInstanceType == "" {
		badRequest(w, "targetInstanceType is required.", "targetInstanceType")
		return
	}

	operationArn := s.applyUpdate(rec, "UPDATE_BROKER_TYPE", api.ClusterStateUpdating, func() {
		group := clone(rec.info.BrokerNodeGroupInfo)
		group.InstanceType = in.TargetInstanceType
		rec.info.BrokerNodeGroupInfo = group
		for i := range rec.nodes {
			rec.nodes[i].InstanceType = in.TargetInstanceType
		}
	})
	s.respondUpdate(w, rec, operationArn)
}

func (s *Server) checkConfiguration(w http.ResponseWriter, info *api.ConfigurationInfo) bool {
	if info == nil || info.Arn == nil || info.Revision == nil {
		badRequest(w, "configurationInfo requires arn and revision.", "configurationInfo")
		return false
	}
	cfg, ok := s.configurations[*info.Arn]
	if !ok {
		notFound(w, fmt.Sprintf("The configuration %s does not exist.", *info.Arn), "configurationInfo")
		return false
	}
	if *info.Revision < 1 || *info.Revision > int64(len(cfg.revisions)) {
		badRequest(w, fmt.Sprintf("Revision %d of configuration %s does not exist.", *info.Revision, *info.Arn), "configurationInfo")
		return false
	}
	return true
}

func (s *Server) updateClusterConfiguration(w http.ResponseWriter, r *http.Request) {
	var in api.UpdateClusterConfigurationRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok || !s.checkUpdatable(w, rec, in.CurrentVersion) || !s.checkConfiguration(w, in.ConfigurationInfo) {
		return
	}

	operationArn := s.applyUpdate(rec, "UPDATE_CLUSTER_CONFIGURATION", api.ClusterStateUpdating, func() {
		rec.info.CurrentBrokerSoftwareInfo = &api.BrokerSoftwareInfo{
			ConfigurationArn:      in.ConfigurationInfo.Arn,
			ConfigurationRevision: in.ConfigurationInfo.Revision,
			KafkaVersion:          rec.info.CurrentBrokerSoftwareInfo.KafkaVersion,
		}
	})
	s.respondUpdate(w, rec, operationArn)
}

func (s *Server) updateClusterKafkaVersion(w http.ResponseWriter, r *http.Request) {
	var in api.UpdateClusterKafkaVersionRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok || !s.checkUpdatable(w, rec, in.CurrentVersion) {
		return
	}
	if in.TargetKafkaVersion == nil || !s.isActiveVersion(*in.TargetKafkaVersion) {
		badRequest(w, "The target Apache Kafka version is not supported.", "targetKafkaVersion")
		return
	}
	current := rec.info.CurrentBrokerSoftwareInfo.KafkaVersion
	if current != nil && *current == *in.TargetKafkaVersion {
		badRequest(w, "The cluster already runs the target Apache Kafka version.", "targetKafkaVersion")
		return
	}
	if in.ConfigurationInfo != nil && !s.checkConfiguration(w, in.ConfigurationInfo) {
		return
	}

	operationArn := s.applyUpdate(rec, "UPDATE_CLUSTER_KAFKA_VERSION", api.ClusterStateUpdating, func() {
		software := clone(rec.info.CurrentBrokerSoftwareInfo)
		software.KafkaVersion = in.TargetKafkaVersion
		if in.ConfigurationInfo != nil {
			software.ConfigurationArn = in.ConfigurationInfo.Arn
			software.ConfigurationRevision = in.ConfigurationInfo.Revision
		}
		rec.info.CurrentBrokerSoftwareInfo = software
		for i := range rec.nodes {
			rec.nodes[i].BrokerNodeInfo.CurrentBrokerSoftwareInfo = clone(software)
		}
	})
	s.respondUpdate(w, rec, operationArn)
}

func (s *Server) updateMonitoring(w http.ResponseWriter, r *http.Request) {
	var in api.UpdateMonitoringRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok || !s.checkUpdatable(w, rec, in.CurrentVersion) {
		return
	}

	operationArn := s.applyUpdate(rec, "UPDATE_MONITORING", api.ClusterStateUpdating, func() {
		if in.EnhancedMonitoring != "" {
			rec.info.EnhancedMonitoring = in.EnhancedMonitoring
		}
		if in.OpenMonitoring != nil {
			rec.info.OpenMonitoring = openMonitoringFromInfo(in.OpenMonitoring)
		}
		if in.LoggingInfo != nil {
			rec.info.LoggingInfo = clone(in.LoggingInfo)
		}
	})
	s.respondUpdate(w, rec, operationArn)
}

func (s *Server) updateSecurity(w http.ResponseWriter, r *http.Request) {
	var in api.UpdateSecurityRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok || !s.checkUpdatable(w, rec, in.CurrentVersion) {
		return
	}
	if in.ClientAuthentication == nil && in.EncryptionInfo == nil {
		badRequest(w, "Specify clientAuthentication or encryptionInfo.", "")
		return
	}

	operationArn := s.applyUpdate(rec, "UPDATE_SECURITY", api.ClusterStateUpdating, func() {
		if in.ClientAuthentication != nil {
			rec.info.ClientAuthentication = clone(in.ClientAuthentication)
		}
		if in.EncryptionInfo != nil && in.EncryptionInfo.EncryptionInTransit != nil {
			enc := clone(rec.info.EncryptionInfo)
			enc.EncryptionInTransit = clone(in.EncryptionInfo.EncryptionInTransit)
			rec.info.EncryptionInfo = enc
		}
	})
	s.respondUpdate(w, rec, operationArn)
}
