package fakemsk

import (
	"fmt"
	"net/http"
	"strings"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

const secretNamePrefix = "AmazonMSK_"

func (s *Server) resourceExists(resourceArn string) bool {
	if _, ok := s.clusters[resourceArn]; ok {
		return true
	}
	_, ok := s.configurations[resourceArn]
	return ok
}

func (s *Server) listTagsForResource(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resourceArn := pathVar(r, "resourceArn")
	if !s.resourceExists(resourceArn) {
		notFound(w, fmt.Sprintf("The resource %s does not exist.", resourceArn), "resourceArn")
		return
	}
	writeJSON(w, http.StatusOK, &api.ListTagsForResourceResponse{Tags: copyTags(s.tags[resourceArn])})
}

func (s *Server) tagResource(w http.ResponseWriter, r *http.Request) {
	var in api.TagResourceRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}
	if len(in.Tags) == 0 {
		badRequest(w, "tags must contain at least one entry.", "tags")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resourceArn := pathVar(r, "resourceArn")
	if !s.resourceExists(resourceArn) {
		notFound(w, fmt.Sprintf("The resource %s does not exist.", resourceArn), "resourceArn")
		return
	}
	tags := s.tags[resourceArn]
	if tags == nil {
		tags = map[string]string{}
		s.tags[resourceArn] = tags
	}
	for k, v := range in.Tags {
		tags[k] = v
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) untagResource(w http.ResponseWriter, r *http.Request) {
	keys := r.URL.Query()["tagKeys"]
	if len(keys) == 0 {
		badRequest(w, "tagKeys is required.", "tagKeys")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resourceArn := pathVar(r, "resourceArn")
	if !s.resourceExists(resourceArn) {
		notFound(w, fmt.Sprintf("The resource %s does not exist.", resourceArn), "resourceArn")
		return
	}
	for _, k := range keys {
		delete(s.tags[resourceArn], k)
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) listKafkaVersions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, end, next, err := s.page(r, len(s.kafkaVersions))
	if err != nil {
		badRequest(w, err.Error(), "nextToken")
		return
	}
	writeJSON(w, http.StatusOK, &api.ListKafkaVersionsResponse{
		KafkaVersions: s.kafkaVersions[start:end],
		NextToken:     next,
	})
}

func (s *Server) isActiveVersion(version string) bool {
	for _, v := range s.kafkaVersions {
		if v.Version != nil && *v.Version == version && v.Status == api.KafkaVersionStatusActive {
			return true
		}
	}
	return false
}

func (s *Server) upgradeTargets(source string) []string {
	targets := []string{}
	for _, v := range s.kafkaVersions {
		if v.Status == api.KafkaVersionStatusActive && v.Version != nil && *v.Version != source && *v.Version > source {
			targets = append(targets, *v.Version)
		}
	}
	return targets
}

func (s *Server) getCompatibleKafkaVersions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &api.GetCompatibleKafkaVersionsResponse{CompatibleKafkaVersions: []api.CompatibleKafkaVersion{}}
	if clusterArn := r.URL.Query().Get("clusterArn"); clusterArn != "" {
		rec, ok := s.clusters[clusterArn]
		if !ok {
			notFound(w, fmt.Sprintf("The cluster %s does not exist.", clusterArn), "clusterArn")
			return
		}
		source := *rec.info.CurrentBrokerSoftwareInfo.KafkaVersion
		out.CompatibleKafkaVersions = append(out.CompatibleKafkaVersions, api.CompatibleKafkaVersion{
			SourceVersion:  ptr.String(source),
			TargetVersions: s.upgradeTargets(source),
		})
		writeJSON(w, http.StatusOK, out)
		return
	}

	for _, v := range s.kafkaVersions {
		if v.Version == nil {
			continue
		}
		out.CompatibleKafkaVersions = append(out.CompatibleKafkaVersions, api.CompatibleKafkaVersion{
			SourceVersion:  v.Version,
			TargetVersions: s.upgradeTargets(*v.Version),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func unprocessed(secretArn, code, message string) api.UnprocessedScramSecret {
	return api.UnprocessedScramSecret{
		ErrorCode:    ptr.String(code),
		ErrorMessage: ptr.String(message),
		SecretArn:    ptr.String(secretArn),
	}
}

func validSecretArn(secretArn string) bool {
	if !strings.HasPrefix(secretArn, "arn:aws:secretsmanager:") {
		return false
	}
	i := strings.Index(secretArn, ":secret:")
	return i >= 0 && strings.HasPrefix(secretArn[i+len(":secret:"):], secretNamePrefix)
}

func (s *Server) batchAssociateScramSecret(w http.ResponseWriter, r *http.Request) {
	var in api.BatchAssociateScramSecretRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}
	if len(in.SecretArnList) == 0 {
		badRequest(w, "secretArnList must contain at least one secret.", "secretArnList")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}
	out := &api.BatchAssociateScramSecretResponse{ClusterArn: rec.info.ClusterArn}
	for _, secretArn := range in.SecretArnList {
		if !validSecretArn(secretArn) {
			out.UnprocessedScramSecrets = append(out.UnprocessedScramSecrets,
				unprocessed(secretArn, "InvalidSecretArn", "The secret name must begin with "+secretNamePrefix+"."))
			continue
		}
		if !containsString(rec.secrets, secretArn) {
			rec.secrets = append(rec.secrets, secretArn)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) batchDisassociateScramSecret(w http.ResponseWriter, r *http.Request) {
	var in api.BatchDisassociateScramSecretRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}
	if len(in.SecretArnList) == 0 {
		badRequest(w, "secretArnList must contain at least one secret.", "secretArnList")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}
	out := &api.BatchDisassociateScramSecretResponse{ClusterArn: rec.info.ClusterArn}
	for _, secretArn := range in.SecretArnList {
		if !containsString(rec.secrets, secretArn) {
			out.UnprocessedScramSecrets = append(out.UnprocessedScramSecrets,
				unprocessed(secretArn, "SecretNotAssociated", "The secret is not associated with the cluster."))
			continue
		}
		kept := rec.secrets[:0]
		for _, a := range rec.secrets {
			if a != secretArn {
				kept = append(kept, a)
			}
		}
		rec.secrets = kept
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listScramSecrets(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}
	start, end, next, err := s.page(r, len(rec.secrets))
	if err != nil {
		badRequest(w, err.Error(), "nextToken")
		return
	}
	writeJSON(w, http.StatusOK, &api.ListScramSecretsResponse{
		NextToken:     next,
		SecretArnList: append([]string{}, rec.secrets[start:end]...),
	})
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
