// Package services contains stateless domain services that implement policies
// spanning beyond a single aggregate, such as the business-calendar arithmetic
// behind the auto-close deadline.
package services
