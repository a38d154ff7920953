// Package utils provides small helpers shared by the vault packages: the
// session id generator used to tag log lines and the HTTP client used by the
// remote store adapter.
package utils
