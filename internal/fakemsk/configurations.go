package fakemsk

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
	"github.com/nandemo-ya/mskgo/internal/kafka/generated/ptr"
)

type configurationRevision struct {
	api.ConfigurationRevision
	serverProperties []byte
}

type configurationRecord struct {
	info      *api.Configuration
	revisions []configurationRevision
}

func (s *Server) lookupConfiguration(w http.ResponseWriter, r *http.Request) (*configurationRecord, bool) {
	configArn := pathVar(r, "arn")
	rec, ok := s.configurations[configArn]
	if !ok {
		notFound(w, fmt.Sprintf("The configuration %s does not exist.", configArn), "arn")
		return nil, false
	}
	return rec, true
}

func (rec *configurationRecord) addRevision(revision configurationRevision) {
	rec.revisions = append(rec.revisions, revision)
	latest := revision.ConfigurationRevision
	rec.info.LatestRevision = &latest
}

func (s *Server) createConfiguration(w http.ResponseWriter, r *http.Request) {
	var in api.CreateConfigurationRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}
	if in.Name == nil || *in.Name == "" {
		badRequest(w, "name is required.", "name")
		return
	}
	if len(in.ServerProperties) == 0 {
		badRequest(w, "serverProperties is required.", "serverProperties")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.configurations {
		if *rec.info.Name == *in.Name {
			conflict(w, fmt.Sprintf("A configuration with the name %s already exists.", *in.Name))
			return
		}
	}

	configArn := s.arn(fmt.Sprintf("configuration/%s/%s-2", *in.Name, uuid.NewString()))
	description := in.Description
	if description == nil {
		description = ptr.String("")
	}
	created := s.timestamp()
	rec := &configurationRecord{
		info: &api.Configuration{
			Arn:           ptr.String(configArn),
			CreationTime:  created,
			Description:   description,
			KafkaVersions: append([]string{}, in.KafkaVersions...),
			Name:          in.Name,
			State:         api.ConfigurationStateActive,
		},
	}
	rec.addRevision(configurationRevision{
		ConfigurationRevision: api.ConfigurationRevision{
			CreationTime: created,
			Description:  description,
			Revision:     ptr.Int64(1),
		},
		serverProperties: append([]byte{}, in.ServerProperties...),
	})

	s.configurations[configArn] = rec
	s.configOrder = append(s.configOrder, configArn)

	writeJSON(w, http.StatusOK, &api.CreateConfigurationResponse{
		Arn:            rec.info.Arn,
		CreationTime:   rec.info.CreationTime,
		LatestRevision: rec.info.LatestRevision,
		Name:           rec.info.Name,
		State:          rec.info.State,
	})
}

func (s *Server) describeConfiguration(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupConfiguration(w, r)
	if !ok {
		return
	}
	info := rec.info
	writeJSON(w, http.StatusOK, &api.DescribeConfigurationResponse{
		Arn:            info.Arn,
		CreationTime:   info.CreationTime,
		Description:    info.Description,
		KafkaVersions:  info.KafkaVersions,
		LatestRevision: info.LatestRevision,
		Name:           info.Name,
		State:          info.State,
	})
}

func (s *Server) describeConfigurationRevision(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupConfiguration(w, r)
	if !ok {
		return
	}
	revision, err := strconv.ParseInt(pathVar(r, "revision"), 10, 64)
	if err != nil {
		badRequest(w, "revision must be an integer.", "revision")
		return
	}
	if revision < 1 || revision > int64(len(rec.revisions)) {
		notFound(w, fmt.Sprintf("Revision %d of configuration %s does not exist.", revision, *rec.info.Arn), "revision")
		return
	}
	rev := rec.revisions[revision-1]
	writeJSON(w, http.StatusOK, &api.DescribeConfigurationRevisionResponse{
		Arn:              rec.info.Arn,
		CreationTime:     rev.CreationTime,
		Description:      rev.Description,
		Revision:         rev.Revision,
		ServerProperties: rev.serverProperties,
	})
}

func (s *Server) listConfigurations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, end, next, err := s.page(r, len(s.configOrder))
	if err != nil {
		badRequest(w, err.Error(), "nextToken")
		return
	}
	out := &api.ListConfigurationsResponse{NextToken: next, Configurations: []api.Configuration{}}
	for _, configArn := range s.configOrder[start:end] {
		out.Configurations = append(out.Configurations, *s.configurations[configArn].info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listConfigurationRevisions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupConfiguration(w, r)
	if !ok {
		return
	}
	start, end, next, err := s.page(r, len(rec.revisions))
	if err != nil {
		badRequest(w, err.Error(), "nextToken")
		return
	}
	out := &api.ListConfigurationRevisionsResponse{NextToken: next, Revisions: []api.ConfigurationRevision{}}
	for _, rev := range rec.revisions[start:end] {
		out.Revisions = append(out.Revisions, rev.ConfigurationRevision)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) updateConfiguration(w http.ResponseWriter, r *http.Request) {
	var in api.UpdateConfigurationRequest
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err.Error(), "")
		return
	}
	if len(in.ServerProperties) == 0 {
		badRequest(w, "serverProperties is required.", "serverProperties")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupConfiguration(w, r)
	if !ok {
		return
	}
	rec.addRevision(configurationRevision{
		ConfigurationRevision: api.ConfigurationRevision{
			CreationTime: s.timestamp(),
			Description:  in.Description,
			Revision:     ptr.Int64(int64(len(rec.revisions) + 1)),
		},
		serverProperties: append([]byte{}, in.ServerProperties...),
	})

	writeJSON(w, http.StatusOK, &api.UpdateConfigurationResponse{
		Arn:            rec.info.Arn,
		LatestRevision: rec.info.LatestRevision,
	})
}

func (s *Server) deleteConfiguration(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookupConfiguration(w, r)
	if !ok {
		return
	}
	configArn := *rec.info.Arn
	for _, cluster := range s.clusters {
		if sw := cluster.info.CurrentBrokerSoftwareInfo; sw != nil && sw.ConfigurationArn != nil && *sw.ConfigurationArn == configArn {
			badRequest(w, fmt.Sprintf("The configuration %s is in use by cluster %s.", configArn, *cluster.info.ClusterName), "arn")
			return
		}
	}

	delete(s.configurations, configArn)
	delete(s.tags, configArn)
	for i, a := range s.configOrder {
		if a == configArn {
			s.configOrder = append(s.configOrder[:i], s.configOrder[i+1:]...)
			break
		}
	}

	writeJSON(w, http.StatusOK, &api.DeleteConfigurationResponse{
		Arn:   ptr.String(configArn),
		State: api.ConfigurationStateDeleting,
	})
}
