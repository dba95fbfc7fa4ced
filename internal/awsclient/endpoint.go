package awsclient

import (
	"fmt"
	"strings"
)

// PartitionForRegion returns the AWS partition a region belongs to.
func PartitionForRegion(region string) string {
	switch {
	case strings.HasPrefix(region, "cn-"):
		return "aws-cn"
	case strings.HasPrefix(region, "us-gov-"):
		return "aws-us-gov"
	case strings.HasPrefix(region, "us-isob-"):
		return "aws-iso-b"
	case strings.HasPrefix(region, "us-iso-"):
		return "aws-iso"
	case strings.HasPrefix(region, "eu-isoe-"):
		return "aws-iso-e"
	default:
		return "aws"
	}
}

// DNSSuffix returns the DNS suffix for a given partition
func DNSSuffix(partition string) string {
	switch partition {
	case "aws-cn":
		return "amazonaws.com.cn"
	case "aws-iso":
		return "c2s.ic.gov"
	case "aws-iso-b":
		return "sc2s.sgov.gov"
	case "aws-iso-e":
		return "cloud.adc-e.uk"
	default:
		return "amazonaws.com"
	}
}

// ResolveEndpoint returns the base URL for service in region. A custom endpoint
// wins and gets https:// when it has no scheme.
func ResolveEndpoint(service, region, custom string) string {
	if custom != "" {
		endpoint := custom
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		return strings.TrimSuffix(endpoint, "/")
	}
	return fmt.Sprintf("https://%s.%s.%s", service, region, DNSSuffix(PartitionForRegion(region)))
}
