/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Keys are prefixed with the bucket name, so buckets never collide.
* Values are protobuf encoded and validated before every write.
*/
package orm
