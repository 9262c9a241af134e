package mocks

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/stretchr/testify/mock"
)

type STSAPI struct {
	stsiface.STSAPI
	mock.Mock
}

func (c *STSAPI) GetSessionTokenWithContext(
	arg1 aws.Context, arg2 *sts.GetSessionTokenInput, arg3 ...request.Option,
) (*sts.GetSessionTokenOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sts.GetSessionTokenOutput), args.Error(1)
}

func (c *STSAPI) AssumeRoleWithContext(
	arg1 aws.Context, arg2 *sts.AssumeRoleInput, arg3 ...request.Option,
) (*sts.AssumeRoleOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sts.AssumeRoleOutput), args.Error(1)
}
