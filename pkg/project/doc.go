// Package project defines the records that flow through the showcase
// pipeline.
//
// A [Repository] is what the fetch stage produces: either a GitHub
// repository or a local project synthesized from configuration. A [Project]
// is a Repository plus everything derived later (README description,
// preview image, curated overrides). [Buckets] holds the final partition
// into the four display categories.
package project
