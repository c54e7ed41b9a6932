// Package domain defines core data models, contracts and error classes shared
// across xkcdget. It contains plain types and interfaces only.
package domain
