/*
Package soulboundtest provides mocks and helpers for testing handlers,
decorators and the application pipeline.
*/
package soulboundtest
