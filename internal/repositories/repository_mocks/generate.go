// Package repository_mocks holds generated gomock doubles for the
// repository interfaces. Regenerate after changing ../interfaces.go:
//
//	go generate ./internal/repositories/repository_mocks
package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks
