// Package services holds the CLI's data-access logic: profile image URL
// resolution, the operator directory and land plot aggregation.
//
// Loaders return a tagged Result so callers can tell "no data" from
// "fetch failed". Result.Items gives the lossy view where a failure reads
// as an empty list.
package services
