// Package catalog implements the outbound half of the gateway: signing
// requests to the upstream content catalog, fetching raw character and comic
// results, and normalizing the two heterogeneous entity shapes into the
// uniform record the gateway serves.
package catalog
