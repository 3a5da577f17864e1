// Package v1alpha1 contains the devstrap bootstrap configuration types.
package v1alpha1
